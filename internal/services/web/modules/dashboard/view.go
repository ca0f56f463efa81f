package dashboard

import (
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/socialcrm/internal/platform/icons"
	"github.com/louisbranch/socialcrm/internal/services/web/components/icon"
	"github.com/louisbranch/socialcrm/internal/services/web/components/layout"
	"github.com/louisbranch/socialcrm/internal/services/web/components/ui"
	webi18n "github.com/louisbranch/socialcrm/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/socialcrm/internal/services/web/templates"
)

func dashboardPage(view DashboardView, loc webi18n.Localizer, now time.Time) templ.Component {
	items := make([]templ.Component, 0, len(view.Cards)+2)
	for _, card := range view.Cards {
		items = append(items, metricCard(card))
	}
	items = append(items, growthCard(view.Chart, loc), activityCard(view.Activities, loc, now))

	return ui.Element("div", ui.Props{Attrs: templ.Attributes{"data-dashboard": true}},
		ui.Element("div", ui.Props{Class: "mb-4 grid gap-4 md:grid-cols-2 lg:grid-cols-4"}, items...),
	)
}

func metricCard(card MetricCard) templ.Component {
	header := ui.CardHeader(ui.Props{Class: "space-y-0 pb-2"},
		layout.Flex(layout.FlexProps{},
			ui.CardTitle(ui.Props{Class: "text-sm font-medium"}, ui.Text(card.Title)),
			icon.Icon(card.Icon, "text-muted-foreground"),
		),
	)
	content := ui.CardContent(ui.Props{},
		ui.Element("div", ui.Props{Class: "text-2xl font-bold"}, ui.Text(strconv.Itoa(card.Value))),
		ui.Element("p", ui.Props{Class: "text-xs text-muted-foreground"}, ui.Text(card.Text)),
	)
	return ui.Card(ui.Props{Attrs: templ.Attributes{"data-metric": card.Title}}, header, content)
}

func growthCard(chart ChartData, loc webi18n.Localizer) templ.Component {
	title := webtemplates.T(loc, "web.dashboard.customer_growth")
	return ui.Card(ui.Props{Class: "md:col-span-2 lg:col-span-3"},
		ui.CardHeader(ui.Props{}, ui.CardTitle(ui.Props{}, ui.Text(title))),
		ui.CardContent(ui.Props{}, ui.BarChart(chart, ui.BarChartOptions{
			Label:     webtemplates.T(loc, "web.chart.aria_label", title),
			EmptyText: webtemplates.T(loc, "web.chart.empty"),
		})),
	)
}

func activityCard(activities []Activity, loc webi18n.Localizer, now time.Time) templ.Component {
	rows := make([]templ.Component, 0, len(activities))
	for _, activity := range activities {
		rows = append(rows, layout.Flex(layout.FlexProps{
			Justify: layout.JustifyStart,
			Class:   "gap-4",
			Attrs:   templ.Attributes{"data-activity": true},
		},
			icon.Icon(icons.IDActivity, "text-muted-foreground"),
			ui.Element("div", ui.Props{},
				ui.Element("p", ui.Props{Class: "text-sm"}, ui.Text(activity.Title)),
				ui.Element("time", ui.Props{
					Class: "block text-xs text-muted-foreground",
					Attrs: templ.Attributes{"datetime": activity.Timestamp.UTC().Format(time.RFC3339)},
				}, ui.Text(webtemplates.TimeAgo(loc, now, activity.Timestamp))),
			),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, ui.Element("p", ui.Props{Class: "text-sm text-muted-foreground"},
			ui.Text(webtemplates.T(loc, "web.dashboard.no_activities"))))
	}

	return ui.Card(ui.Props{},
		ui.CardHeader(ui.Props{}, ui.CardTitle(ui.Props{}, ui.Text(webtemplates.T(loc, "web.dashboard.recent_activities")))),
		ui.CardContent(ui.Props{},
			layout.Flex(layout.FlexProps{
				Direction: layout.DirectionCol,
				Justify:   layout.JustifyStart,
				Align:     layout.AlignStretch,
				Class:     "gap-4",
			}, rows...),
		),
	)
}
