package core

import (
	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

// GetHeatmapResult computes the heatmap aggregate for the configured
// property, going through the durable cache when one is available.
func GetHeatmapResult(cfg *contract.Config, engine *Engine, mgr contract.CacheManager) (schema.HeatmapData, error) {
	points, stamp, err := engine.DataPoints(cfg.PropertyID, extractOptions(cfg))
	if err != nil {
		return schema.HeatmapData{}, err
	}
	return cachedAggregate(cfg, mgr, schema.HeatmapChart, stamp, func() (schema.HeatmapData, error) {
		return AggregateHeatmap(points, cfg.PropertyID, cfg.DisplayName, cfg.Granularity, HeatmapOptions{ShowEmpty: cfg.ShowEmpty})
	})
}

// GetSeriesResult computes the time-series aggregate for the configured property.
func GetSeriesResult(cfg *contract.Config, engine *Engine, mgr contract.CacheManager) (schema.ChartData, error) {
	points, stamp, err := engine.DataPoints(cfg.PropertyID, extractOptions(cfg))
	if err != nil {
		return schema.ChartData{}, err
	}
	return cachedAggregate(cfg, mgr, schema.SeriesChart, stamp, func() (schema.ChartData, error) {
		return AggregateSeries(points, cfg.PropertyID, cfg.DisplayName, cfg.Granularity)
	})
}

// GetPieResult computes the categorical aggregate for the configured property.
func GetPieResult(cfg *contract.Config, engine *Engine, mgr contract.CacheManager) (schema.PieChartData, error) {
	points, stamp, err := engine.DataPoints(cfg.PropertyID, extractOptions(cfg))
	if err != nil {
		return schema.PieChartData{}, err
	}
	return cachedAggregate(cfg, mgr, schema.PieChart, stamp, func() (schema.PieChartData, error) {
		return AggregatePie(points, cfg.PropertyID, cfg.DisplayName, PieOptions{CaseSensitive: cfg.CaseSensitivePie}), nil
	})
}

// GetScatterResult computes the scatter aggregate for the configured property.
func GetScatterResult(cfg *contract.Config, engine *Engine, mgr contract.CacheManager) (schema.ScatterChartData, error) {
	points, stamp, err := engine.DataPoints(cfg.PropertyID, extractOptions(cfg))
	if err != nil {
		return schema.ScatterChartData{}, err
	}
	return cachedAggregate(cfg, mgr, schema.ScatterChart, stamp, func() (schema.ScatterChartData, error) {
		return AggregateScatter(points, cfg.PropertyID, cfg.DisplayName), nil
	})
}

// GetBubbleResult computes the bubble aggregate for the configured property.
func GetBubbleResult(cfg *contract.Config, engine *Engine, mgr contract.CacheManager) (schema.BubbleChartData, error) {
	points, stamp, err := engine.DataPoints(cfg.PropertyID, extractOptions(cfg))
	if err != nil {
		return schema.BubbleChartData{}, err
	}
	return cachedAggregate(cfg, mgr, schema.BubbleChart, stamp, func() (schema.BubbleChartData, error) {
		return AggregateBubble(points, cfg.PropertyID, cfg.DisplayName, cfg.Granularity)
	})
}

// GetTagCloudResult computes the tag-frequency aggregate for the configured property.
func GetTagCloudResult(cfg *contract.Config, engine *Engine, mgr contract.CacheManager) (schema.TagCloudData, error) {
	points, stamp, err := engine.DataPoints(cfg.PropertyID, extractOptions(cfg))
	if err != nil {
		return schema.TagCloudData{}, err
	}
	return cachedAggregate(cfg, mgr, schema.TagCloudChart, stamp, func() (schema.TagCloudData, error) {
		return AggregateTagCloud(points, cfg.PropertyID, cfg.DisplayName, TagCloudOptions{CaseSensitive: cfg.CaseSensitiveTags}), nil
	})
}

// GetTimelineResult computes the timeline aggregate for the configured property.
func GetTimelineResult(cfg *contract.Config, engine *Engine, mgr contract.CacheManager) (schema.TimelineData, error) {
	points, stamp, err := engine.DataPoints(cfg.PropertyID, extractOptions(cfg))
	if err != nil {
		return schema.TimelineData{}, err
	}
	return cachedAggregate(cfg, mgr, schema.TimelineChart, stamp, func() (schema.TimelineData, error) {
		return AggregateTimeline(points, cfg.PropertyID, cfg.DisplayName), nil
	})
}

// NewVaultEngine builds an engine for the configured vault and anchor settings.
func NewVaultEngine(cfg *contract.Config, source contract.EntrySource) *Engine {
	return NewEngine(source, anchorOptions(cfg))
}

// anchorOptions maps the validated config onto anchor resolution options.
// A user-selected anchor property always wins over filename inference.
func anchorOptions(cfg *contract.Config) AnchorOptions {
	return AnchorOptions{
		Property:      cfg.AnchorProperty,
		PropertyFirst: cfg.AnchorProperty != "",
	}
}

// extractOptions maps the validated config onto extraction options.
func extractOptions(cfg *contract.Config) ExtractOptions {
	return ExtractOptions{
		LabelDepth: cfg.LabelDepth,
		Unknown:    cfg.Unknown,
	}
}
