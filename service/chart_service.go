package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"gcc-tools/domain"
	"gcc-tools/repository"
)

var pieColors = []drawing.Color{
	drawing.ColorFromHex("0057B8"),
	drawing.ColorFromHex("C9A94A"),
	drawing.ColorFromHex("10B981"),
	drawing.ColorFromHex("F59E0B"),
	drawing.ColorFromHex("EF4444"),
}

const (
	chartWidth  = 512
	chartHeight = 512
)

type ChartService struct {
	cache renderCache
}

func NewChartService(cache repository.CacheRepository, ttl time.Duration) *ChartService {
	return &ChartService{cache: renderCache{repo: cache, ttl: ttl}}
}

type pieRequest struct {
	Title  string         `json:"title"`
	Slices []domain.Slice `json:"slices"`
}

// RenderPie draws a breakdown as a PNG pie chart.
func (s *ChartService) RenderPie(
	ctx context.Context,
	title string,
	slices []domain.Slice,
) ([]byte, error) {
	slices = nonZeroSlices(slices...)
	if len(slices) == 0 {
		return nil, domain.ErrEmptyChart
	}

	req := pieRequest{Title: title, Slices: slices}
	return s.cache.fetch(ctx, "chart", req, func() ([]byte, error) {
		return renderPie(req)
	})
}

func renderPie(req pieRequest) ([]byte, error) {
	values := make([]chart.Value, 0, len(req.Slices))
	for i, sl := range req.Slices {
		values = append(values, chart.Value{
			Label: sl.Name,
			Value: sl.Value,
			Style: chart.Style{
				FillColor:   pieColors[i%len(pieColors)],
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}

	pie := chart.PieChart{
		Title:  req.Title,
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}
