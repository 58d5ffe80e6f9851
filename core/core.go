package core

import (
	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/internal/outwriter"
)

// ExecuteHeatmap aggregates one property into an intensity grid and writes it.
func ExecuteHeatmap(cfg *contract.Config, source contract.EntrySource, mgr contract.CacheManager) error {
	data, err := GetHeatmapResult(cfg, NewVaultEngine(cfg, source), mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteHeatmap(cfg, &data)
}

// ExecuteSeries aggregates one property into a time-series chart and writes it.
func ExecuteSeries(cfg *contract.Config, source contract.EntrySource, mgr contract.CacheManager) error {
	data, err := GetSeriesResult(cfg, NewVaultEngine(cfg, source), mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteSeries(cfg, &data)
}

// ExecutePie aggregates one property into a categorical distribution and writes it.
func ExecutePie(cfg *contract.Config, source contract.EntrySource, mgr contract.CacheManager) error {
	data, err := GetPieResult(cfg, NewVaultEngine(cfg, source), mgr)
	if err != nil {
		return err
	}
	return outwriter.WritePie(cfg, &data)
}

// ExecuteScatter aggregates one property into a scatter cloud and writes it.
func ExecuteScatter(cfg *contract.Config, source contract.EntrySource, mgr contract.CacheManager) error {
	data, err := GetScatterResult(cfg, NewVaultEngine(cfg, source), mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteScatter(cfg, &data)
}

// ExecuteBubble aggregates one property into a bubble cloud and writes it.
func ExecuteBubble(cfg *contract.Config, source contract.EntrySource, mgr contract.CacheManager) error {
	data, err := GetBubbleResult(cfg, NewVaultEngine(cfg, source), mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteBubble(cfg, &data)
}

// ExecuteTagCloud aggregates one property into a frequency cloud and writes it.
func ExecuteTagCloud(cfg *contract.Config, source contract.EntrySource, mgr contract.CacheManager) error {
	data, err := GetTagCloudResult(cfg, NewVaultEngine(cfg, source), mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteTagCloud(cfg, &data)
}

// ExecuteTimeline aggregates one property into a timeline and writes it.
func ExecuteTimeline(cfg *contract.Config, source contract.EntrySource, mgr contract.CacheManager) error {
	data, err := GetTimelineResult(cfg, NewVaultEngine(cfg, source), mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteTimeline(cfg, &data)
}
