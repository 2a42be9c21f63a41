// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package config

// Default returns the built-in example dashboard: an organisation-wide KPI
// board of four rows covering finance, customers, delivery, and people.
func Default() *Config {
	return &Config{
		Title:          "XYZ Indicator",
		Columns:        4,
		CurrencySymbol: "Rp",
		Metrics: []MetricConfig{
			{Name: "Revenue", Value: Scalar(20_000_000), Target: Num(100_000_000), Change: Num(12), Unit: "currency", Icon: "💰"},
			{Name: "Expense", Value: Scalar(8_500_000), Target: Num(50_000_000), Change: Num(5), Unit: "currency", Icon: "💸", LowerIsBetter: true},
			{Name: "Productivity Index", Value: Scalar(1.88), Target: Num(2.93), Change: Num(15), Unit: "ratio", Icon: "📈"},
			{Name: "Manpower Fulfillment", Value: Scalar(102), Target: Num(122), Unit: "count"},
			{Name: "Hiring Funnel", Value: List(100, 70, 40, 25, 20), Unit: "count"},
			{Name: "Number Active Customer", Value: Scalar(153), Target: Num(225), Change: Num(3), Unit: "count", Icon: "👥"},
			{Name: "Product Churn Rate", Value: Scalar(7), Target: Num(0), Unit: "percent", LowerIsBetter: true},
			{Name: "Average Product CSAT", Value: Scalar(4.0), Target: Num(4.45), Unit: "score"},
			{Name: "Product NPS", Value: Scalar(70), Target: Num(90), Unit: "percent"},
			{Name: "On Time Product Delivery Rate", Value: Scalar(92), Unit: "percent"},
			{Name: "Defect Rate", Value: Scalar(5), Target: Num(0), Unit: "percent", LowerIsBetter: true},
			{Name: "SLA Achievement", Value: Scalar(95), Unit: "percent"},
			{Name: "Deployment Success Rate", Value: List(80, 82, 81, 83, 84, 85, 86, 85, 84, 83, 82, 81), Unit: "percent"},
			{Name: "SIT Quality Index", Value: List(85, 89, 85, 89), Change: Num(5), Unit: "score"},
			{Name: "Talent Turnover Rate", Value: Scalar(7), Change: Num(5), Unit: "percent", LowerIsBetter: true},
		},
		Layout: []CellConfig{
			{Metric: "Revenue", Kind: "progressBar", Row: 0, Col: 0},
			{Metric: "Expense", Kind: "progressBar", Row: 0, Col: 1},
			{Metric: "Productivity Index", Kind: "progressBar", Row: 0, Col: 2},
			{Metric: "Manpower Fulfillment", Kind: "progressBar", Row: 0, Col: 3},

			{Metric: "Number Active Customer", Kind: "progressBar", Row: 1, Col: 0},
			{Metric: "Product Churn Rate", Kind: "circularGauge", Row: 1, Col: 1,
				Range: []float64{0, 20}, Thresholds: []float64{5, 10}, Colors: []string{"green", "orange", "red"}},
			{Metric: "Average Product CSAT", Kind: "starRating", Row: 1, Col: 2},
			{Metric: "Product NPS", Kind: "circularGauge", Row: 1, Col: 3,
				Range: []float64{0, 100}, Colors: []string{"purple"}},

			{Metric: "On Time Product Delivery Rate", Kind: "circularGauge", Row: 2, Col: 0,
				Range: []float64{0, 100}, Thresholds: []float64{80, 90}, Colors: []string{"red", "orange", "green"}},
			{Metric: "Defect Rate", Kind: "circularGauge", Row: 2, Col: 1,
				Range: []float64{0, 15}, Thresholds: []float64{3, 8}, Colors: []string{"green", "orange", "red"}},
			{Metric: "SLA Achievement", Kind: "circularGauge", Row: 2, Col: 2,
				Range: []float64{0, 100}, Thresholds: []float64{90}, Colors: []string{"red", "green"}},
			{Metric: "Deployment Success Rate", Kind: "lineSeries", Row: 2, Col: 3},

			{Metric: "SIT Quality Index", Kind: "barSeries", Row: 3, Col: 0,
				Categories: []string{"Dev", "Mid", "Sr", "Expert"}},
			{Metric: "Talent Turnover Rate", Kind: "circularGauge", Row: 3, Col: 1,
				Range: []float64{0, 20}, Thresholds: []float64{5, 10}, Colors: []string{"green", "orange", "red"}},
			{Metric: "Hiring Funnel", Kind: "funnel", Row: 3, Col: 2,
				Categories: []string{"Qualified Pool", "HC Interview", "User Interview", "Offering", "Successful Hire"}},
		},
	}
}
