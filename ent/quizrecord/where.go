// Code generated by ent, DO NOT EDIT.

package quizrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ignaciourbina/quizview/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldLTE(FieldID, id))
}

// UID applies equality check predicate on the "uid" field. It's identical to UIDEQ.
func UID(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEQ(FieldUID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEQ(FieldSource, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEQ(FieldTitle, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEQ(FieldQuestionCount, v))
}

// ImportedAt applies equality check predicate on the "imported_at" field. It's identical to ImportedAtEQ.
func ImportedAt(v time.Time) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEQ(FieldImportedAt, v))
}

// UIDEQ applies the EQ predicate on the "uid" field.
func UIDEQ(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEQ(FieldUID, v))
}

// UIDNEQ applies the NEQ predicate on the "uid" field.
func UIDNEQ(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldNEQ(FieldUID, v))
}

// UIDIn applies the In predicate on the "uid" field.
func UIDIn(vs ...string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldIn(FieldUID, vs...))
}

// UIDNotIn applies the NotIn predicate on the "uid" field.
func UIDNotIn(vs ...string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldNotIn(FieldUID, vs...))
}

// UIDGT applies the GT predicate on the "uid" field.
func UIDGT(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldGT(FieldUID, v))
}

// UIDGTE applies the GTE predicate on the "uid" field.
func UIDGTE(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldGTE(FieldUID, v))
}

// UIDLT applies the LT predicate on the "uid" field.
func UIDLT(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldLT(FieldUID, v))
}

// UIDLTE applies the LTE predicate on the "uid" field.
func UIDLTE(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldLTE(FieldUID, v))
}

// UIDContains applies the Contains predicate on the "uid" field.
func UIDContains(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldContains(FieldUID, v))
}

// UIDHasPrefix applies the HasPrefix predicate on the "uid" field.
func UIDHasPrefix(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldHasPrefix(FieldUID, v))
}

// UIDHasSuffix applies the HasSuffix predicate on the "uid" field.
func UIDHasSuffix(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldHasSuffix(FieldUID, v))
}

// UIDEqualFold applies the EqualFold predicate on the "uid" field.
func UIDEqualFold(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEqualFold(FieldUID, v))
}

// UIDContainsFold applies the ContainsFold predicate on the "uid" field.
func UIDContainsFold(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldContainsFold(FieldUID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldContainsFold(FieldSource, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldContainsFold(FieldTitle, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldLTE(FieldQuestionCount, v))
}

// TypeCountsIsNil applies the IsNil predicate on the "type_counts" field.
func TypeCountsIsNil() predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldIsNull(FieldTypeCounts))
}

// TypeCountsNotNil applies the NotNil predicate on the "type_counts" field.
func TypeCountsNotNil() predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldNotNull(FieldTypeCounts))
}

// DiagnosticsIsNil applies the IsNil predicate on the "diagnostics" field.
func DiagnosticsIsNil() predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldIsNull(FieldDiagnostics))
}

// DiagnosticsNotNil applies the NotNil predicate on the "diagnostics" field.
func DiagnosticsNotNil() predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldNotNull(FieldDiagnostics))
}

// ImportedAtEQ applies the EQ predicate on the "imported_at" field.
func ImportedAtEQ(v time.Time) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldEQ(FieldImportedAt, v))
}

// ImportedAtNEQ applies the NEQ predicate on the "imported_at" field.
func ImportedAtNEQ(v time.Time) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldNEQ(FieldImportedAt, v))
}

// ImportedAtIn applies the In predicate on the "imported_at" field.
func ImportedAtIn(vs ...time.Time) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldIn(FieldImportedAt, vs...))
}

// ImportedAtNotIn applies the NotIn predicate on the "imported_at" field.
func ImportedAtNotIn(vs ...time.Time) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldNotIn(FieldImportedAt, vs...))
}

// ImportedAtGT applies the GT predicate on the "imported_at" field.
func ImportedAtGT(v time.Time) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldGT(FieldImportedAt, v))
}

// ImportedAtGTE applies the GTE predicate on the "imported_at" field.
func ImportedAtGTE(v time.Time) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldGTE(FieldImportedAt, v))
}

// ImportedAtLT applies the LT predicate on the "imported_at" field.
func ImportedAtLT(v time.Time) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldLT(FieldImportedAt, v))
}

// ImportedAtLTE applies the LTE predicate on the "imported_at" field.
func ImportedAtLTE(v time.Time) predicate.QuizRecord {
	return predicate.QuizRecord(sql.FieldLTE(FieldImportedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizRecord) predicate.QuizRecord {
	return predicate.QuizRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizRecord) predicate.QuizRecord {
	return predicate.QuizRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizRecord) predicate.QuizRecord {
	return predicate.QuizRecord(sql.NotPredicates(p))
}
