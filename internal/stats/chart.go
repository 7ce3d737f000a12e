package stats

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChart renders the stats page: one bar chart of reference circuit
// sizes and one of completion per topic.
func WriteChart(w io.Writer, metrics []Metric) error {
	page := components.NewPage()
	page.AddCharts(sizeChart(metrics), completionChart(metrics))
	return page.Render(w)
}

func sizeChart(metrics []Metric) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Reference circuit sizes",
			Subtitle: "rank-1 constraints per exercise",
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "zklings stats", Width: "1100px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	names := make([]string, len(metrics))
	constraints := make([]opts.BarData, len(metrics))
	for i, m := range metrics {
		names[i] = m.Name
		constraints[i] = opts.BarData{Value: m.Size.Constraints}
	}
	bar.SetXAxis(names).
		AddSeries("constraints", constraints).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))
	return bar
}

func completionChart(metrics []Metric) *charts.Bar {
	type tally struct{ done, total int }
	perTopic := make(map[string]*tally)
	var order []string
	for _, m := range metrics {
		tl, ok := perTopic[m.Topic]
		if !ok {
			tl = &tally{}
			perTopic[m.Topic] = tl
			order = append(order, m.Topic)
		}
		tl.total++
		if m.Done {
			tl.done++
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Progress by topic"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "400px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	done := make([]opts.BarData, len(order))
	total := make([]opts.BarData, len(order))
	for i, topic := range order {
		tl := perTopic[topic]
		done[i] = opts.BarData{Value: tl.done, Name: fmt.Sprintf("%s done", topic)}
		total[i] = opts.BarData{Value: tl.total, Name: topic}
	}
	bar.SetXAxis(order).
		AddSeries("done", done).
		AddSeries("total", total)
	return bar
}
