package rerank

import (
	"context"
	"fmt"
	"time"

	"github.com/rushteam/itemfeedback/core"
	"github.com/rushteam/itemfeedback/feedback"
	"github.com/rushteam/itemfeedback/log"
	"github.com/rushteam/itemfeedback/pipeline"
	"github.com/rushteam/itemfeedback/pkg/utils"
)

// Recorder 记录反馈结果（例如 feedback.History）。
type Recorder interface {
	Record(ctx context.Context, out *feedback.Outcome) error
}

// FeedbackNode 在 Pipeline 中调用反馈收集器，并把用户给出的排序应用到 records 上。
//
//   - 用户未给出反馈：原样返回；
//   - 用户给出的排序不是合法排列（RankingCollector 不做校验）：返回 INVALID_INPUT 错误；
//   - Recorder 非空时记录 Outcome，记录失败只打日志，不影响排序结果。
type FeedbackNode struct {
	Collector feedback.Collector
	Recorder  Recorder

	// Preview 在收集反馈前展示当前 records（可选），保证用户看到的编号与排序下标一致
	Preview func(records core.Collection)
}

func (n *FeedbackNode) Name() string {
	return "rerank.feedback"
}

func (n *FeedbackNode) Kind() pipeline.Kind {
	return pipeline.KindFeedback
}

func (n *FeedbackNode) Process(
	ctx context.Context,
	fctx *core.FeedbackContext,
	records core.Collection,
) (core.Collection, error) {
	if n.Collector == nil {
		return records, nil
	}

	if n.Preview != nil {
		n.Preview(records)
	}
	out, err := n.Collector.Collect(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("collect %s feedback: %w", n.Collector.Mode(), err)
	}
	if out == nil {
		return records, nil
	}

	reordered, err := Apply(records, out.Ranking)
	if err != nil {
		return nil, err
	}

	if fctx != nil {
		fctx.PutLabel("feedback_mode", utils.Label{Value: string(out.Mode), Source: n.Name()})
		out.SessionID = fctx.SessionID
		out.UserID = fctx.UserID
	}
	out.Timestamp = time.Now().Unix()

	if n.Recorder != nil {
		if err := n.Recorder.Record(ctx, out); err != nil {
			log.Warnf("record feedback outcome: %v", err)
		}
	}
	return reordered, nil
}
