// Code generated by ent, DO NOT EDIT.

package analysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/finsightlabs/finsight/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldDocumentID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldOwnerID, v))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldQuery, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldErrorMessage, v))
}

// ProcessingTimeSeconds applies equality check predicate on the "processing_time_seconds" field. It's identical to ProcessingTimeSecondsEQ.
func ProcessingTimeSeconds(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldProcessingTimeSeconds, v))
}

// TextLength applies equality check predicate on the "text_length" field. It's identical to TextLengthEQ.
func TextLength(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldTextLength, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldDocumentID, vs...))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldOwnerID, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldQuery, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldStatus, v))
}

// LocalSummaryIsNil applies the IsNil predicate on the "local_summary" field.
func LocalSummaryIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldLocalSummary))
}

// LocalSummaryNotNil applies the NotNil predicate on the "local_summary" field.
func LocalSummaryNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldLocalSummary))
}

// StageResultsIsNil applies the IsNil predicate on the "stage_results" field.
func StageResultsIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldStageResults))
}

// StageResultsNotNil applies the NotNil predicate on the "stage_results" field.
func StageResultsNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldStageResults))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ProcessingTimeSecondsEQ applies the EQ predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsEQ(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsNEQ applies the NEQ predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsNEQ(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsIn applies the In predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsIn(vs ...float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldProcessingTimeSeconds, vs...))
}

// ProcessingTimeSecondsNotIn applies the NotIn predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsNotIn(vs ...float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldProcessingTimeSeconds, vs...))
}

// ProcessingTimeSecondsGT applies the GT predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsGT(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsGTE applies the GTE predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsGTE(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsLT applies the LT predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsLT(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldProcessingTimeSeconds, v))
}

// ProcessingTimeSecondsLTE applies the LTE predicate on the "processing_time_seconds" field.
func ProcessingTimeSecondsLTE(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldProcessingTimeSeconds, v))
}

// TextLengthEQ applies the EQ predicate on the "text_length" field.
func TextLengthEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldTextLength, v))
}

// TextLengthNEQ applies the NEQ predicate on the "text_length" field.
func TextLengthNEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldTextLength, v))
}

// TextLengthIn applies the In predicate on the "text_length" field.
func TextLengthIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldTextLength, vs...))
}

// TextLengthNotIn applies the NotIn predicate on the "text_length" field.
func TextLengthNotIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldTextLength, vs...))
}

// TextLengthGT applies the GT predicate on the "text_length" field.
func TextLengthGT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldTextLength, v))
}

// TextLengthGTE applies the GTE predicate on the "text_length" field.
func TextLengthGTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldTextLength, v))
}

// TextLengthLT applies the LT predicate on the "text_length" field.
func TextLengthLT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldTextLength, v))
}

// TextLengthLTE applies the LTE predicate on the "text_length" field.
func TextLengthLTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldTextLength, v))
}

// TextLengthIsNil applies the IsNil predicate on the "text_length" field.
func TextLengthIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldTextLength))
}

// TextLengthNotNil applies the NotNil predicate on the "text_length" field.
func TextLengthNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldTextLength))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.NotPredicates(p))
}
