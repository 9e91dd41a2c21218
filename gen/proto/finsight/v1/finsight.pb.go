// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: finsight/v1/finsight.proto

package finsightv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// Document is one uploaded file tracked through the analysis lifecycle.
type Document struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Id                    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId               string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Filename              string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType           string                 `protobuf:"bytes,4,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	FileSize              int64                  `protobuf:"varint,5,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	Status                string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`                        // uploaded | processing | analyzed | failed
	CreatedAt             string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	ProcessingStartedAt   string                 `protobuf:"bytes,8,opt,name=processing_started_at,json=processingStartedAt,proto3" json:"processing_started_at,omitempty"`
	AnalysisCompletedAt   string                 `protobuf:"bytes,9,opt,name=analysis_completed_at,json=analysisCompletedAt,proto3" json:"analysis_completed_at,omitempty"`
	FailedAt              string                 `protobuf:"bytes,10,opt,name=failed_at,json=failedAt,proto3" json:"failed_at,omitempty"`
	ErrorMessage          string                 `protobuf:"bytes,11,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ProcessingTimeSeconds float64                `protobuf:"fixed64,12,opt,name=processing_time_seconds,json=processingTimeSeconds,proto3" json:"processing_time_seconds,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetProcessingStartedAt() string {
	if x != nil {
		return x.ProcessingStartedAt
	}
	return ""
}

func (x *Document) GetAnalysisCompletedAt() string {
	if x != nil {
		return x.AnalysisCompletedAt
	}
	return ""
}

func (x *Document) GetFailedAt() string {
	if x != nil {
		return x.FailedAt
	}
	return ""
}

func (x *Document) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Document) GetProcessingTimeSeconds() float64 {
	if x != nil {
		return x.ProcessingTimeSeconds
	}
	return 0
}

// LocalSummary is the heuristic keyword scan computed before the LLM stages.
type LocalSummary struct {
	state                  protoimpl.MessageState `protogen:"open.v1"`
	Summary                string                 `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	WordCount              int32                  `protobuf:"varint,2,opt,name=word_count,json=wordCount,proto3" json:"word_count,omitempty"`
	FinancialKeywordsFound []string               `protobuf:"bytes,3,rep,name=financial_keywords_found,json=financialKeywordsFound,proto3" json:"financial_keywords_found,omitempty"`
	ConfidenceScore        float64                `protobuf:"fixed64,4,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	AnalysisType           string                 `protobuf:"bytes,5,opt,name=analysis_type,json=analysisType,proto3" json:"analysis_type,omitempty"`
	Error                  string                 `protobuf:"bytes,6,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *LocalSummary) Reset() {
	*x = LocalSummary{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LocalSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LocalSummary) ProtoMessage() {}

func (x *LocalSummary) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LocalSummary.ProtoReflect.Descriptor instead.
func (*LocalSummary) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{1}
}

func (x *LocalSummary) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *LocalSummary) GetWordCount() int32 {
	if x != nil {
		return x.WordCount
	}
	return 0
}

func (x *LocalSummary) GetFinancialKeywordsFound() []string {
	if x != nil {
		return x.FinancialKeywordsFound
	}
	return nil
}

func (x *LocalSummary) GetConfidenceScore() float64 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *LocalSummary) GetAnalysisType() string {
	if x != nil {
		return x.AnalysisType
	}
	return ""
}

func (x *LocalSummary) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

// Analysis is one immutable pipeline run outcome.
type Analysis struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Id                    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId            string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	OwnerId               string                 `protobuf:"bytes,3,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Query                 string                 `protobuf:"bytes,4,opt,name=query,proto3" json:"query,omitempty"`
	Status                string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"` // completed | completed_with_errors | failed
	LocalSummary          *LocalSummary          `protobuf:"bytes,6,opt,name=local_summary,json=localSummary,proto3" json:"local_summary,omitempty"`
	StageResults          map[string]string      `protobuf:"bytes,7,rep,name=stage_results,json=stageResults,proto3" json:"stage_results,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	ErrorMessage          string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ProcessingTimeSeconds float64                `protobuf:"fixed64,9,opt,name=processing_time_seconds,json=processingTimeSeconds,proto3" json:"processing_time_seconds,omitempty"`
	TextLength            int32                  `protobuf:"varint,10,opt,name=text_length,json=textLength,proto3" json:"text_length,omitempty"`
	CreatedAt             string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *Analysis) Reset() {
	*x = Analysis{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Analysis) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Analysis) ProtoMessage() {}

func (x *Analysis) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Analysis.ProtoReflect.Descriptor instead.
func (*Analysis) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{2}
}

func (x *Analysis) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Analysis) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Analysis) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Analysis) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *Analysis) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Analysis) GetLocalSummary() *LocalSummary {
	if x != nil {
		return x.LocalSummary
	}
	return nil
}

func (x *Analysis) GetStageResults() map[string]string {
	if x != nil {
		return x.StageResults
	}
	return nil
}

func (x *Analysis) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Analysis) GetProcessingTimeSeconds() float64 {
	if x != nil {
		return x.ProcessingTimeSeconds
	}
	return 0
}

func (x *Analysis) GetTextLength() int32 {
	if x != nil {
		return x.TextLength
	}
	return 0
}

func (x *Analysis) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type SubmitDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	Query         string                 `protobuf:"bytes,4,opt,name=query,proto3" json:"query,omitempty"` // optional; empty uses the default analysis query
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentRequest) Reset() {
	*x = SubmitDocumentRequest{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentRequest) ProtoMessage() {}

func (x *SubmitDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentRequest.ProtoReflect.Descriptor instead.
func (*SubmitDocumentRequest) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitDocumentRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *SubmitDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *SubmitDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *SubmitDocumentRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type SubmitDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Duplicate     bool                   `protobuf:"varint,2,opt,name=duplicate,proto3" json:"duplicate,omitempty"` // true when an identical upload already exists for this owner
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentResponse) Reset() {
	*x = SubmitDocumentResponse{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentResponse) ProtoMessage() {}

func (x *SubmitDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentResponse.ProtoReflect.Descriptor instead.
func (*SubmitDocumentResponse) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{4}
}

func (x *SubmitDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *SubmitDocumentResponse) GetDuplicate() bool {
	if x != nil {
		return x.Duplicate
	}
	return false
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{5}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{7}
}

func (x *ListDocumentsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ListDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListDocumentsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{8}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{9}
}

func (x *DeleteDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{10}
}

type ReanalyzeDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Query         string                 `protobuf:"bytes,2,opt,name=query,proto3" json:"query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReanalyzeDocumentRequest) Reset() {
	*x = ReanalyzeDocumentRequest{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReanalyzeDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReanalyzeDocumentRequest) ProtoMessage() {}

func (x *ReanalyzeDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReanalyzeDocumentRequest.ProtoReflect.Descriptor instead.
func (*ReanalyzeDocumentRequest) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{11}
}

func (x *ReanalyzeDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ReanalyzeDocumentRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type ReanalyzeDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReanalyzeDocumentResponse) Reset() {
	*x = ReanalyzeDocumentResponse{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReanalyzeDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReanalyzeDocumentResponse) ProtoMessage() {}

func (x *ReanalyzeDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReanalyzeDocumentResponse.ProtoReflect.Descriptor instead.
func (*ReanalyzeDocumentResponse) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{12}
}

func (x *ReanalyzeDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetAnalysisRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AnalysisId    string                 `protobuf:"bytes,1,opt,name=analysis_id,json=analysisId,proto3" json:"analysis_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnalysisRequest) Reset() {
	*x = GetAnalysisRequest{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnalysisRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnalysisRequest) ProtoMessage() {}

func (x *GetAnalysisRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnalysisRequest.ProtoReflect.Descriptor instead.
func (*GetAnalysisRequest) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{13}
}

func (x *GetAnalysisRequest) GetAnalysisId() string {
	if x != nil {
		return x.AnalysisId
	}
	return ""
}

type GetAnalysisResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Analysis      *Analysis              `protobuf:"bytes,1,opt,name=analysis,proto3" json:"analysis,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnalysisResponse) Reset() {
	*x = GetAnalysisResponse{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnalysisResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnalysisResponse) ProtoMessage() {}

func (x *GetAnalysisResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnalysisResponse.ProtoReflect.Descriptor instead.
func (*GetAnalysisResponse) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{14}
}

func (x *GetAnalysisResponse) GetAnalysis() *Analysis {
	if x != nil {
		return x.Analysis
	}
	return nil
}

type ListAnalysesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"` // either document_id or owner_id is required
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAnalysesRequest) Reset() {
	*x = ListAnalysesRequest{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAnalysesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAnalysesRequest) ProtoMessage() {}

func (x *ListAnalysesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAnalysesRequest.ProtoReflect.Descriptor instead.
func (*ListAnalysesRequest) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{15}
}

func (x *ListAnalysesRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ListAnalysesRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ListAnalysesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListAnalysesRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListAnalysesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Analyses      []*Analysis            `protobuf:"bytes,1,rep,name=analyses,proto3" json:"analyses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAnalysesResponse) Reset() {
	*x = ListAnalysesResponse{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAnalysesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAnalysesResponse) ProtoMessage() {}

func (x *ListAnalysesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAnalysesResponse.ProtoReflect.Descriptor instead.
func (*ListAnalysesResponse) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{16}
}

func (x *ListAnalysesResponse) GetAnalyses() []*Analysis {
	if x != nil {
		return x.Analyses
	}
	return nil
}

type ExportAnalysesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAnalysesRequest) Reset() {
	*x = ExportAnalysesRequest{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAnalysesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAnalysesRequest) ProtoMessage() {}

func (x *ExportAnalysesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAnalysesRequest.ProtoReflect.Descriptor instead.
func (*ExportAnalysesRequest) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{17}
}

func (x *ExportAnalysesRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type ExportAnalysesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"` // xlsx workbook
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAnalysesResponse) Reset() {
	*x = ExportAnalysesResponse{}
	mi := &file_finsight_v1_finsight_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAnalysesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAnalysesResponse) ProtoMessage() {}

func (x *ExportAnalysesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_finsight_v1_finsight_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAnalysesResponse.ProtoReflect.Descriptor instead.
func (*ExportAnalysesResponse) Descriptor() ([]byte, []int) {
	return file_finsight_v1_finsight_proto_rawDescGZIP(), []int{18}
}

func (x *ExportAnalysesResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ExportAnalysesResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_finsight_v1_finsight_proto protoreflect.FileDescriptor

const file_finsight_v1_finsight_proto_rawDesc = "" +
	"\n" +
	"\x1afinsight/v1/finsight.proto\x12\vfinsight.v1\"\xaa\x03\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x04 \x01(\tR\vcontentType\x12\x1b\n" +
	"\tfile_size\x18\x05 \x01(\x03R\bfileSize\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x122\n" +
	"\x15processing_started_at\x18\b \x01(\tR\x13processingStartedAt\x122\n" +
	"\x15analysis_completed_at\x18\t \x01(\tR\x13analysisCompletedAt\x12\x1b\n" +
	"\tfailed_at\x18\n" +
	" \x01(\tR\bfailedAt\x12#\n" +
	"\rerror_message\x18\v \x01(\tR\ferrorMessage\x126\n" +
	"\x17processing_time_seconds\x18\f \x01(\x01R\x15processingTimeSeconds\"\xe7\x01\n" +
	"\fLocalSummary\x12\x18\n" +
	"\asummary\x18\x01 \x01(\tR\asummary\x12\x1d\n" +
	"\n" +
	"word_count\x18\x02 \x01(\x05R\twordCount\x128\n" +
	"\x18financial_keywords_found\x18\x03 \x03(\tR\x16financialKeywordsFound\x12)\n" +
	"\x10confidence_score\x18\x04 \x01(\x01R\x0fconfidenceScore\x12#\n" +
	"\ranalysis_type\x18\x05 \x01(\tR\fanalysisType\x12\x14\n" +
	"\x05error\x18\x06 \x01(\tR\x05error\"\xf0\x03\n" +
	"\bAnalysis\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x19\n" +
	"\bowner_id\x18\x03 \x01(\tR\aownerId\x12\x14\n" +
	"\x05query\x18\x04 \x01(\tR\x05query\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12>\n" +
	"\rlocal_summary\x18\x06 \x01(\v2\x19.finsight.v1.LocalSummaryR\flocalSummary\x12L\n" +
	"\rstage_results\x18\a \x03(\v2'.finsight.v1.Analysis.StageResultsEntryR\fstageResults\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\x126\n" +
	"\x17processing_time_seconds\x18\t \x01(\x01R\x15processingTimeSeconds\x12\x1f\n" +
	"\vtext_length\x18\n" +
	" \x01(\x05R\n" +
	"textLength\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x1a?\n" +
	"\x11StageResultsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"~\n" +
	"\x15SubmitDocumentRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\x12\x14\n" +
	"\x05query\x18\x04 \x01(\tR\x05query\"i\n" +
	"\x16SubmitDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.finsight.v1.DocumentR\bdocument\x12\x1c\n" +
	"\tduplicate\x18\x02 \x01(\bR\tduplicate\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"H\n" +
	"\x13GetDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.finsight.v1.DocumentR\bdocument\"_\n" +
	"\x14ListDocumentsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\"L\n" +
	"\x15ListDocumentsResponse\x123\n" +
	"\tdocuments\x18\x01 \x03(\v2\x15.finsight.v1.DocumentR\tdocuments\"8\n" +
	"\x15DeleteDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x18\n" +
	"\x16DeleteDocumentResponse\"Q\n" +
	"\x18ReanalyzeDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05query\x18\x02 \x01(\tR\x05query\"N\n" +
	"\x19ReanalyzeDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.finsight.v1.DocumentR\bdocument\"5\n" +
	"\x12GetAnalysisRequest\x12\x1f\n" +
	"\vanalysis_id\x18\x01 \x01(\tR\n" +
	"analysisId\"H\n" +
	"\x13GetAnalysisResponse\x121\n" +
	"\banalysis\x18\x01 \x01(\v2\x15.finsight.v1.AnalysisR\banalysis\"\x7f\n" +
	"\x13ListAnalysesRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x04 \x01(\x05R\x06offset\"I\n" +
	"\x14ListAnalysesResponse\x121\n" +
	"\banalyses\x18\x01 \x03(\v2\x15.finsight.v1.AnalysisR\banalyses\"2\n" +
	"\x15ExportAnalysesRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"N\n" +
	"\x16ExportAnalysesResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xd6\x03\n" +
	"\x10DocumentsService\x12Y\n" +
	"\x0eSubmitDocument\x12\".finsight.v1.SubmitDocumentRequest\x1a#.finsight.v1.SubmitDocumentResponse\x12P\n" +
	"\vGetDocument\x12\x1f.finsight.v1.GetDocumentRequest\x1a .finsight.v1.GetDocumentResponse\x12V\n" +
	"\rListDocuments\x12!.finsight.v1.ListDocumentsRequest\x1a\".finsight.v1.ListDocumentsResponse\x12Y\n" +
	"\x0eDeleteDocument\x12\".finsight.v1.DeleteDocumentRequest\x1a#.finsight.v1.DeleteDocumentResponse\x12b\n" +
	"\x11ReanalyzeDocument\x12%.finsight.v1.ReanalyzeDocumentRequest\x1a&.finsight.v1.ReanalyzeDocumentResponse2\x93\x02\n" +
	"\x0fAnalysesService\x12P\n" +
	"\vGetAnalysis\x12\x1f.finsight.v1.GetAnalysisRequest\x1a .finsight.v1.GetAnalysisResponse\x12S\n" +
	"\fListAnalyses\x12 .finsight.v1.ListAnalysesRequest\x1a!.finsight.v1.ListAnalysesResponse\x12Y\n" +
	"\x0eExportAnalyses\x12\".finsight.v1.ExportAnalysesRequest\x1a#.finsight.v1.ExportAnalysesResponseBCZAgithub.com/finsightlabs/finsight/gen/proto/finsight/v1;finsightv1b\x06proto3"

var (
	file_finsight_v1_finsight_proto_rawDescOnce sync.Once
	file_finsight_v1_finsight_proto_rawDescData []byte
)

func file_finsight_v1_finsight_proto_rawDescGZIP() []byte {
	file_finsight_v1_finsight_proto_rawDescOnce.Do(func() {
		file_finsight_v1_finsight_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_finsight_v1_finsight_proto_rawDesc), len(file_finsight_v1_finsight_proto_rawDesc)))
	})
	return file_finsight_v1_finsight_proto_rawDescData
}

var file_finsight_v1_finsight_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_finsight_v1_finsight_proto_goTypes = []any{
	(*Document)(nil),                  // 0: finsight.v1.Document
	(*LocalSummary)(nil),              // 1: finsight.v1.LocalSummary
	(*Analysis)(nil),                  // 2: finsight.v1.Analysis
	(*SubmitDocumentRequest)(nil),     // 3: finsight.v1.SubmitDocumentRequest
	(*SubmitDocumentResponse)(nil),    // 4: finsight.v1.SubmitDocumentResponse
	(*GetDocumentRequest)(nil),        // 5: finsight.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),       // 6: finsight.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),      // 7: finsight.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),     // 8: finsight.v1.ListDocumentsResponse
	(*DeleteDocumentRequest)(nil),     // 9: finsight.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),    // 10: finsight.v1.DeleteDocumentResponse
	(*ReanalyzeDocumentRequest)(nil),  // 11: finsight.v1.ReanalyzeDocumentRequest
	(*ReanalyzeDocumentResponse)(nil), // 12: finsight.v1.ReanalyzeDocumentResponse
	(*GetAnalysisRequest)(nil),        // 13: finsight.v1.GetAnalysisRequest
	(*GetAnalysisResponse)(nil),       // 14: finsight.v1.GetAnalysisResponse
	(*ListAnalysesRequest)(nil),       // 15: finsight.v1.ListAnalysesRequest
	(*ListAnalysesResponse)(nil),      // 16: finsight.v1.ListAnalysesResponse
	(*ExportAnalysesRequest)(nil),     // 17: finsight.v1.ExportAnalysesRequest
	(*ExportAnalysesResponse)(nil),    // 18: finsight.v1.ExportAnalysesResponse
	nil,                               // 19: finsight.v1.Analysis.StageResultsEntry
}
var file_finsight_v1_finsight_proto_depIdxs = []int32{
	1,  // 0: finsight.v1.Analysis.local_summary:type_name -> finsight.v1.LocalSummary
	19, // 1: finsight.v1.Analysis.stage_results:type_name -> finsight.v1.Analysis.StageResultsEntry
	0,  // 2: finsight.v1.SubmitDocumentResponse.document:type_name -> finsight.v1.Document
	0,  // 3: finsight.v1.GetDocumentResponse.document:type_name -> finsight.v1.Document
	0,  // 4: finsight.v1.ListDocumentsResponse.documents:type_name -> finsight.v1.Document
	0,  // 5: finsight.v1.ReanalyzeDocumentResponse.document:type_name -> finsight.v1.Document
	2,  // 6: finsight.v1.GetAnalysisResponse.analysis:type_name -> finsight.v1.Analysis
	2,  // 7: finsight.v1.ListAnalysesResponse.analyses:type_name -> finsight.v1.Analysis
	3,  // 8: finsight.v1.DocumentsService.SubmitDocument:input_type -> finsight.v1.SubmitDocumentRequest
	5,  // 9: finsight.v1.DocumentsService.GetDocument:input_type -> finsight.v1.GetDocumentRequest
	7,  // 10: finsight.v1.DocumentsService.ListDocuments:input_type -> finsight.v1.ListDocumentsRequest
	9,  // 11: finsight.v1.DocumentsService.DeleteDocument:input_type -> finsight.v1.DeleteDocumentRequest
	11, // 12: finsight.v1.DocumentsService.ReanalyzeDocument:input_type -> finsight.v1.ReanalyzeDocumentRequest
	13, // 13: finsight.v1.AnalysesService.GetAnalysis:input_type -> finsight.v1.GetAnalysisRequest
	15, // 14: finsight.v1.AnalysesService.ListAnalyses:input_type -> finsight.v1.ListAnalysesRequest
	17, // 15: finsight.v1.AnalysesService.ExportAnalyses:input_type -> finsight.v1.ExportAnalysesRequest
	4,  // 16: finsight.v1.DocumentsService.SubmitDocument:output_type -> finsight.v1.SubmitDocumentResponse
	6,  // 17: finsight.v1.DocumentsService.GetDocument:output_type -> finsight.v1.GetDocumentResponse
	8,  // 18: finsight.v1.DocumentsService.ListDocuments:output_type -> finsight.v1.ListDocumentsResponse
	10, // 19: finsight.v1.DocumentsService.DeleteDocument:output_type -> finsight.v1.DeleteDocumentResponse
	12, // 20: finsight.v1.DocumentsService.ReanalyzeDocument:output_type -> finsight.v1.ReanalyzeDocumentResponse
	14, // 21: finsight.v1.AnalysesService.GetAnalysis:output_type -> finsight.v1.GetAnalysisResponse
	16, // 22: finsight.v1.AnalysesService.ListAnalyses:output_type -> finsight.v1.ListAnalysesResponse
	18, // 23: finsight.v1.AnalysesService.ExportAnalyses:output_type -> finsight.v1.ExportAnalysesResponse
	16, // [16:24] is the sub-list for method output_type
	8,  // [8:16] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_finsight_v1_finsight_proto_init() }
func file_finsight_v1_finsight_proto_init() {
	if File_finsight_v1_finsight_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_finsight_v1_finsight_proto_rawDesc), len(file_finsight_v1_finsight_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_finsight_v1_finsight_proto_goTypes,
		DependencyIndexes: file_finsight_v1_finsight_proto_depIdxs,
		MessageInfos:      file_finsight_v1_finsight_proto_msgTypes,
	}.Build()
	File_finsight_v1_finsight_proto = out.File
	file_finsight_v1_finsight_proto_goTypes = nil
	file_finsight_v1_finsight_proto_depIdxs = nil
}
