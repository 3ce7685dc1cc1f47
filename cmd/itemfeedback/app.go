package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/rushteam/itemfeedback/config"
	"github.com/rushteam/itemfeedback/config/builders"
	"github.com/rushteam/itemfeedback/core"
	"github.com/rushteam/itemfeedback/feedback"
	"github.com/rushteam/itemfeedback/group"
	"github.com/rushteam/itemfeedback/loader"
	"github.com/rushteam/itemfeedback/log"
	"github.com/rushteam/itemfeedback/pipeline"
	"github.com/rushteam/itemfeedback/rerank"
	"github.com/rushteam/itemfeedback/store"
)

const feedbackNodeType = "rerank.feedback"

// App 把加载、Pipeline、反馈记录与分组展示串起来。
type App struct {
	Config *config.AppConfig
	In     io.Reader
	Out    io.Writer
	JSON   bool

	// Store 非空时优先于 Config.Store 使用（测试注入）
	Store core.Store
}

func (a *App) Run(ctx context.Context) error {
	cfg := a.Config
	records, err := loader.LoadFiles(ctx, cfg.Input...)
	if err != nil {
		return fmt.Errorf("load itemsets: %w", err)
	}
	log.Infof("loaded %d itemsets from %d files", len(records), len(cfg.Input))

	st, err := a.openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	var recorder rerank.Recorder
	if st != nil {
		defer st.Close()
		recorder = feedback.NewHistory(st, cfg.Store.TTL)
	}

	con := feedback.NewConsole(a.In, a.Out)
	config.Register(feedbackNodeType, builders.FeedbackBuilder(con, recorder, feedback.Mode(cfg.Mode), cfg.RowIDColumn))

	p, err := buildPipeline(&cfg.Pipeline)
	if err != nil {
		return err
	}

	fctx := &core.FeedbackContext{
		SessionID: uuid.NewString(),
		UserID:    os.Getenv("USER"),
		Scene:     "cli",
		Params:    map[string]any{core.ParamRowIDColumn: cfg.RowIDColumn},
	}
	result, err := p.Run(ctx, fctx, records)
	if err != nil {
		return err
	}
	if lbl, ok := fctx.GetLabel("feedback_mode"); ok {
		log.Infof("session %s: applied %s feedback", fctx.SessionID, lbl.Value)
	}

	tiers := group.Classified(result, cfg.RowIDColumn)
	if a.JSON {
		enc := json.NewEncoder(a.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(tiers)
	}
	printTiers(a.Out, tiers)
	return nil
}

func (a *App) openStore() (core.Store, error) {
	if a.Store != nil {
		return a.Store, nil
	}
	sc := a.Config.Store
	switch sc.Type {
	case "", "none":
		return nil, nil
	case "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		addr := sc.Addr
		if addr == "" {
			addr = "127.0.0.1:6379"
		}
		return store.NewRedisStore(addr, sc.DB)
	default:
		return nil, fmt.Errorf("unknown store type: %s", sc.Type)
	}
}

// buildPipeline 按配置构建 Pipeline。未配置节点时只包含反馈节点；
// 配置中缺少反馈节点时，将其插在最后一个 filter 节点之后。
func buildPipeline(cfg *pipeline.Config) (*pipeline.Pipeline, error) {
	nodes := cfg.Pipeline.Nodes
	hasFeedback := false
	lastFilter := -1
	for i, nc := range nodes {
		switch nc.Type {
		case feedbackNodeType:
			hasFeedback = true
		case "filter":
			lastFilter = i
		}
	}
	if !hasFeedback {
		withFeedback := make([]pipeline.NodeConfig, 0, len(nodes)+1)
		withFeedback = append(withFeedback, nodes[:lastFilter+1]...)
		withFeedback = append(withFeedback, pipeline.NodeConfig{Type: feedbackNodeType})
		withFeedback = append(withFeedback, nodes[lastFilter+1:]...)
		cfg.Pipeline.Nodes = withFeedback
	}

	if err := config.ValidatePipelineConfig(cfg); err != nil {
		return nil, err
	}
	p, err := cfg.BuildPipeline(config.DefaultFactory())
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}
	if p.Name == "" {
		p.Name = "default"
	}
	return p, nil
}

func printTiers(w io.Writer, tiers group.Tiered) {
	for _, tier := range []group.Tier{group.TierVeryInteresting, group.TierMildlyInteresting, group.TierUninteresting} {
		groups := tiers.Get(tier)
		fmt.Fprintf(w, "\n== %s (%d groups, %d itemsets)\n", tier, groups.Len(), groups.Size())
		for _, g := range groups {
			fmt.Fprintf(w, "[%s]\n", g.Key)
			for _, m := range g.Members {
				if m.Field != "" && len(m.RowIDs) > 0 {
					fmt.Fprintf(w, "  %s  (%s: %v)\n", feedback.FormatItemset(m.Itemset), m.Field, []any(m.RowIDs))
					continue
				}
				fmt.Fprintf(w, "  %s\n", feedback.FormatItemset(m.Itemset))
			}
		}
	}
}
