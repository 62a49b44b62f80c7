package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ignaciourbina/quizview/ent"
	"github.com/ignaciourbina/quizview/ent/quizrecord"
	"github.com/ignaciourbina/quizview/internal/quiz"
	"github.com/ignaciourbina/quizview/internal/quizcsv"
)

// Summary is a library listing row. The quiz model itself stays in the
// database until Get deserializes it.
type Summary struct {
	UID           string
	Source        string
	Title         string
	QuestionCount int
	TypeCounts    map[string]int
	ImportedAt    time.Time
}

// Entry is a fully loaded library record.
type Entry struct {
	Summary
	Quiz        quiz.Quiz
	Diagnostics []string
}

// QuizRepo persists imported quizzes.
type QuizRepo interface {
	// Save stores a parse result under a fresh UID and returns it.
	Save(ctx context.Context, source string, res *quizcsv.Result) (string, error)

	// List returns all library entries, newest first.
	List(ctx context.Context) ([]Summary, error)

	// Get loads one entry by UID.
	Get(ctx context.Context, uid string) (*Entry, error)

	// Delete removes one entry by UID.
	Delete(ctx context.Context, uid string) error
}

type quizRepo struct {
	client *ent.Client
}

func (r *quizRepo) Save(ctx context.Context, source string, res *quizcsv.Result) (string, error) {
	data, err := quizToMap(res.Quiz)
	if err != nil {
		return "", fmt.Errorf("serialize quiz: %w", err)
	}

	counts := make(map[string]int)
	for _, q := range res.Quiz.Questions {
		counts[string(q.Type)]++
	}

	var diags []string
	for _, d := range res.Diagnostics {
		diags = append(diags, d.String())
	}

	uid := uuid.New().String()
	_, err = r.client.QuizRecord.Create().
		SetUID(uid).
		SetSource(source).
		SetTitle(titleFromSource(source)).
		SetQuestionCount(len(res.Quiz.Questions)).
		SetTypeCounts(counts).
		SetData(data).
		SetDiagnostics(diags).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("save quiz record: %w", err)
	}
	return uid, nil
}

func (r *quizRepo) List(ctx context.Context) ([]Summary, error) {
	records, err := r.client.QuizRecord.Query().
		Order(ent.Desc(quizrecord.FieldImportedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quiz records: %w", err)
	}

	out := make([]Summary, 0, len(records))
	for _, rec := range records {
		out = append(out, Summary{
			UID:           rec.UID,
			Source:        rec.Source,
			Title:         rec.Title,
			QuestionCount: rec.QuestionCount,
			TypeCounts:    rec.TypeCounts,
			ImportedAt:    rec.ImportedAt,
		})
	}
	return out, nil
}

func (r *quizRepo) Get(ctx context.Context, uid string) (*Entry, error) {
	rec, err := r.client.QuizRecord.Query().
		Where(quizrecord.UID(uid)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("quiz %s not found", uid)
		}
		return nil, fmt.Errorf("query quiz record: %w", err)
	}

	qz, err := quizFromMap(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("deserialize quiz %s: %w", uid, err)
	}

	return &Entry{
		Summary: Summary{
			UID:           rec.UID,
			Source:        rec.Source,
			Title:         rec.Title,
			QuestionCount: rec.QuestionCount,
			TypeCounts:    rec.TypeCounts,
			ImportedAt:    rec.ImportedAt,
		},
		Quiz:        qz,
		Diagnostics: rec.Diagnostics,
	}, nil
}

func (r *quizRepo) Delete(ctx context.Context, uid string) error {
	n, err := r.client.QuizRecord.Delete().
		Where(quizrecord.UID(uid)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete quiz record: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("quiz %s not found", uid)
	}
	return nil
}

// quizToMap round-trips the model through JSON into the generic map the
// ent JSON column stores.
func quizToMap(qz quiz.Quiz) (map[string]any, error) {
	data, err := json.Marshal(qz)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func quizFromMap(m map[string]any) (quiz.Quiz, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return quiz.Quiz{}, err
	}
	var qz quiz.Quiz
	if err := json.Unmarshal(data, &qz); err != nil {
		return quiz.Quiz{}, err
	}
	return qz, nil
}

// titleFromSource derives a display title from a file name by dropping
// the extension.
func titleFromSource(source string) string {
	for i := len(source) - 1; i >= 0; i-- {
		if source[i] == '.' {
			return source[:i]
		}
		if source[i] == '/' || source[i] == '\\' {
			break
		}
	}
	return source
}
