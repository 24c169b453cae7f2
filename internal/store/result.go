package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sthiel/mentiq/ent"
	"github.com/sthiel/mentiq/ent/resultrecord"
	"github.com/sthiel/mentiq/internal/question"
	"github.com/sthiel/mentiq/internal/score"
)

// ResultData is one graded attempt as it enters or leaves the history.
type ResultData struct {
	SessionID string
	SetName   string
	Who       score.Identity
	Expired   bool
	Result    *score.Result
	TakenAt   time.Time
}

// ResultRepo is the append-only result history.
type ResultRepo interface {
	// Save appends a graded attempt.
	Save(ctx context.Context, data ResultData) error

	// List returns up to limit results, newest first (0 = all).
	List(ctx context.Context, limit int) ([]ResultData, error)

	// Latest returns the most recent result, or nil when none exist.
	Latest(ctx context.Context) (*ResultData, error)
}

type resultRepo struct {
	client *ent.Client
}

func (r *resultRepo) Save(ctx context.Context, data ResultData) error {
	res := data.Result
	cats := make(map[string]any, len(res.Categories))
	for kind, cs := range res.Categories {
		cats[string(kind)] = map[string]any{
			"correct": cs.Correct,
			"total":   cs.Total,
		}
	}
	answers := make([]map[string]any, len(res.Answers))
	for i, a := range res.Answers {
		answers[i] = map[string]any{
			"question_id": a.QuestionID,
			"kind":        string(a.Kind),
			"selected":    a.Selected,
			"correct":     a.Correct,
			"right":       a.Right,
		}
	}

	create := r.client.ResultRecord.Create().
		SetSessionID(data.SessionID).
		SetSetName(data.SetName).
		SetTakerName(data.Who.Name).
		SetTakerAge(data.Who.Age).
		SetTakerLocation(data.Who.Location).
		SetRawScore(res.RawScore).
		SetTotalQuestions(len(res.Answers)).
		SetIqIndex(res.Index).
		SetClassification(res.Classification).
		SetPercentile(res.Percentile).
		SetAccuracyPercent(res.AccuracyPercent).
		SetTimeSpentSecs(res.TimeSpentSecs).
		SetExpired(data.Expired).
		SetCategories(cats).
		SetAnswers(answers)
	if !data.TakenAt.IsZero() {
		create = create.SetTakenAt(data.TakenAt)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (r *resultRepo) List(ctx context.Context, limit int) ([]ResultData, error) {
	q := r.client.ResultRecord.Query().
		Order(ent.Desc(resultrecord.FieldTakenAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	out := make([]ResultData, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToResult(row))
	}
	return out, nil
}

func (r *resultRepo) Latest(ctx context.Context) (*ResultData, error) {
	row, err := r.client.ResultRecord.Query().
		Order(ent.Desc(resultrecord.FieldTakenAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest result: %w", err)
	}
	data := rowToResult(row)
	return &data, nil
}

func rowToResult(row *ent.ResultRecord) ResultData {
	res := &score.Result{
		RawScore:        row.RawScore,
		Index:           row.IqIndex,
		Classification:  row.Classification,
		Percentile:      row.Percentile,
		CorrectCount:    row.RawScore,
		IncorrectCount:  row.TotalQuestions - row.RawScore,
		AccuracyPercent: row.AccuracyPercent,
		TimeSpentSecs:   row.TimeSpentSecs,
		Categories:      map[question.Kind]score.CategoryScore{},
	}
	for kind, v := range row.Categories {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		res.Categories[question.Kind(kind)] = score.CategoryScore{
			Correct: asInt(m["correct"]),
			Total:   asInt(m["total"]),
		}
	}
	for _, a := range row.Answers {
		res.Answers = append(res.Answers, score.AnswerDetail{
			QuestionID: asString(a["question_id"]),
			Kind:       question.Kind(asString(a["kind"])),
			Selected:   asInt(a["selected"]),
			Correct:    asInt(a["correct"]),
			Right:      asBool(a["right"]),
		})
	}

	return ResultData{
		SessionID: row.SessionID,
		SetName:   row.SetName,
		Who: score.Identity{
			Name:     row.TakerName,
			Age:      row.TakerAge,
			Location: row.TakerLocation,
		},
		Expired: row.Expired,
		Result:  res,
		TakenAt: row.TakenAt,
	}
}

// JSON round-trips deliver numbers as float64; ent JSON columns hold any.

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}
