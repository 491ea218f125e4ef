// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: reconciler/v1/reconciler.proto

package reconcilerpb

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

type ReportFile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileName      string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FilePath      string                 `protobuf:"bytes,2,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReportFile) Reset() {
	*x = ReportFile{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReportFile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReportFile) ProtoMessage() {}

func (x *ReportFile) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReportFile.ProtoReflect.Descriptor instead.
func (*ReportFile) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{0}
}

func (x *ReportFile) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *ReportFile) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

type ReconcileBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Files         []*ReportFile          `protobuf:"bytes,1,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReconcileBatchRequest) Reset() {
	*x = ReconcileBatchRequest{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReconcileBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReconcileBatchRequest) ProtoMessage() {}

func (x *ReconcileBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReconcileBatchRequest.ProtoReflect.Descriptor instead.
func (*ReconcileBatchRequest) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{1}
}

func (x *ReconcileBatchRequest) GetFiles() []*ReportFile {
	if x != nil {
		return x.Files
	}
	return nil
}

type Mapping struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Key            string                 `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
	FileName       string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FilePath       string                 `protobuf:"bytes,4,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	Slot           string                 `protobuf:"bytes,5,opt,name=slot,proto3" json:"slot,omitempty"` // SIMILARITY or AI
	AlreadyApplied bool                   `protobuf:"varint,6,opt,name=already_applied,json=alreadyApplied,proto3" json:"already_applied,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Mapping) Reset() {
	*x = Mapping{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Mapping) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Mapping) ProtoMessage() {}

func (x *Mapping) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Mapping.ProtoReflect.Descriptor instead.
func (*Mapping) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{2}
}

func (x *Mapping) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Mapping) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *Mapping) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Mapping) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *Mapping) GetSlot() string {
	if x != nil {
		return x.Slot
	}
	return ""
}

func (x *Mapping) GetAlreadyApplied() bool {
	if x != nil {
		return x.AlreadyApplied
	}
	return false
}

type UnmatchedEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileName      string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FilePath      string                 `protobuf:"bytes,2,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	Key           string                 `protobuf:"bytes,3,opt,name=key,proto3" json:"key,omitempty"`
	Reason        string                 `protobuf:"bytes,4,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnmatchedEntry) Reset() {
	*x = UnmatchedEntry{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnmatchedEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnmatchedEntry) ProtoMessage() {}

func (x *UnmatchedEntry) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnmatchedEntry.ProtoReflect.Descriptor instead.
func (*UnmatchedEntry) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{3}
}

func (x *UnmatchedEntry) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *UnmatchedEntry) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *UnmatchedEntry) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *UnmatchedEntry) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type ReviewFlag struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Key           string                 `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
	Reason        string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewFlag) Reset() {
	*x = ReviewFlag{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewFlag) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewFlag) ProtoMessage() {}

func (x *ReviewFlag) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewFlag.ProtoReflect.Descriptor instead.
func (*ReviewFlag) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{4}
}

func (x *ReviewFlag) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ReviewFlag) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *ReviewFlag) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type CompletedDocument struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	CustomerId    string                 `protobuf:"bytes,2,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompletedDocument) Reset() {
	*x = CompletedDocument{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompletedDocument) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompletedDocument) ProtoMessage() {}

func (x *CompletedDocument) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompletedDocument.ProtoReflect.Descriptor instead.
func (*CompletedDocument) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{5}
}

func (x *CompletedDocument) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *CompletedDocument) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *CompletedDocument) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type BatchStats struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	TotalReports     int32                  `protobuf:"varint,1,opt,name=total_reports,json=totalReports,proto3" json:"total_reports,omitempty"`
	MappedCount      int32                  `protobuf:"varint,2,opt,name=mapped_count,json=mappedCount,proto3" json:"mapped_count,omitempty"`
	UnmatchedCount   int32                  `protobuf:"varint,3,opt,name=unmatched_count,json=unmatchedCount,proto3" json:"unmatched_count,omitempty"`
	NeedsReviewCount int32                  `protobuf:"varint,4,opt,name=needs_review_count,json=needsReviewCount,proto3" json:"needs_review_count,omitempty"`
	CompletedCount   int32                  `protobuf:"varint,5,opt,name=completed_count,json=completedCount,proto3" json:"completed_count,omitempty"`
	ApplyFailures    int32                  `protobuf:"varint,6,opt,name=apply_failures,json=applyFailures,proto3" json:"apply_failures,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *BatchStats) Reset() {
	*x = BatchStats{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchStats) ProtoMessage() {}

func (x *BatchStats) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchStats.ProtoReflect.Descriptor instead.
func (*BatchStats) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{6}
}

func (x *BatchStats) GetTotalReports() int32 {
	if x != nil {
		return x.TotalReports
	}
	return 0
}

func (x *BatchStats) GetMappedCount() int32 {
	if x != nil {
		return x.MappedCount
	}
	return 0
}

func (x *BatchStats) GetUnmatchedCount() int32 {
	if x != nil {
		return x.UnmatchedCount
	}
	return 0
}

func (x *BatchStats) GetNeedsReviewCount() int32 {
	if x != nil {
		return x.NeedsReviewCount
	}
	return 0
}

func (x *BatchStats) GetCompletedCount() int32 {
	if x != nil {
		return x.CompletedCount
	}
	return 0
}

func (x *BatchStats) GetApplyFailures() int32 {
	if x != nil {
		return x.ApplyFailures
	}
	return 0
}

type ReconcileBatchResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Mapped             []*Mapping             `protobuf:"bytes,1,rep,name=mapped,proto3" json:"mapped,omitempty"`
	Unmatched          []*UnmatchedEntry      `protobuf:"bytes,2,rep,name=unmatched,proto3" json:"unmatched,omitempty"`
	NeedsReview        []*ReviewFlag          `protobuf:"bytes,3,rep,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	CompletedDocuments []*CompletedDocument   `protobuf:"bytes,4,rep,name=completed_documents,json=completedDocuments,proto3" json:"completed_documents,omitempty"`
	Stats              *BatchStats            `protobuf:"bytes,5,opt,name=stats,proto3" json:"stats,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ReconcileBatchResponse) Reset() {
	*x = ReconcileBatchResponse{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReconcileBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReconcileBatchResponse) ProtoMessage() {}

func (x *ReconcileBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReconcileBatchResponse.ProtoReflect.Descriptor instead.
func (*ReconcileBatchResponse) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{7}
}

func (x *ReconcileBatchResponse) GetMapped() []*Mapping {
	if x != nil {
		return x.Mapped
	}
	return nil
}

func (x *ReconcileBatchResponse) GetUnmatched() []*UnmatchedEntry {
	if x != nil {
		return x.Unmatched
	}
	return nil
}

func (x *ReconcileBatchResponse) GetNeedsReview() []*ReviewFlag {
	if x != nil {
		return x.NeedsReview
	}
	return nil
}

func (x *ReconcileBatchResponse) GetCompletedDocuments() []*CompletedDocument {
	if x != nil {
		return x.CompletedDocuments
	}
	return nil
}

func (x *ReconcileBatchResponse) GetStats() *BatchStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

type UnmatchedReport struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ReportKey     string                 `protobuf:"bytes,3,opt,name=report_key,json=reportKey,proto3" json:"report_key,omitempty"`
	FilePath      string                 `protobuf:"bytes,4,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	Reason        string                 `protobuf:"bytes,5,opt,name=reason,proto3" json:"reason,omitempty"`
	Resolved      bool                   `protobuf:"varint,6,opt,name=resolved,proto3" json:"resolved,omitempty"`
	DocumentId    string                 `protobuf:"bytes,7,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"` // empty until manually assigned
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ResolvedAt    string                 `protobuf:"bytes,9,opt,name=resolved_at,json=resolvedAt,proto3" json:"resolved_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnmatchedReport) Reset() {
	*x = UnmatchedReport{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnmatchedReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnmatchedReport) ProtoMessage() {}

func (x *UnmatchedReport) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnmatchedReport.ProtoReflect.Descriptor instead.
func (*UnmatchedReport) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{8}
}

func (x *UnmatchedReport) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UnmatchedReport) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UnmatchedReport) GetReportKey() string {
	if x != nil {
		return x.ReportKey
	}
	return ""
}

func (x *UnmatchedReport) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *UnmatchedReport) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *UnmatchedReport) GetResolved() bool {
	if x != nil {
		return x.Resolved
	}
	return false
}

func (x *UnmatchedReport) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *UnmatchedReport) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *UnmatchedReport) GetResolvedAt() string {
	if x != nil {
		return x.ResolvedAt
	}
	return ""
}

type ListUnmatchedReportsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OnlyUnresolved bool                   `protobuf:"varint,1,opt,name=only_unresolved,json=onlyUnresolved,proto3" json:"only_unresolved,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListUnmatchedReportsRequest) Reset() {
	*x = ListUnmatchedReportsRequest{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUnmatchedReportsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUnmatchedReportsRequest) ProtoMessage() {}

func (x *ListUnmatchedReportsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUnmatchedReportsRequest.ProtoReflect.Descriptor instead.
func (*ListUnmatchedReportsRequest) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{9}
}

func (x *ListUnmatchedReportsRequest) GetOnlyUnresolved() bool {
	if x != nil {
		return x.OnlyUnresolved
	}
	return false
}

type ListUnmatchedReportsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reports       []*UnmatchedReport     `protobuf:"bytes,1,rep,name=reports,proto3" json:"reports,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUnmatchedReportsResponse) Reset() {
	*x = ListUnmatchedReportsResponse{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUnmatchedReportsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUnmatchedReportsResponse) ProtoMessage() {}

func (x *ListUnmatchedReportsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUnmatchedReportsResponse.ProtoReflect.Descriptor instead.
func (*ListUnmatchedReportsResponse) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{10}
}

func (x *ListUnmatchedReportsResponse) GetReports() []*UnmatchedReport {
	if x != nil {
		return x.Reports
	}
	return nil
}

type AssignUnmatchedReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UnmatchedId   string                 `protobuf:"bytes,1,opt,name=unmatched_id,json=unmatchedId,proto3" json:"unmatched_id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Slot          string                 `protobuf:"bytes,3,opt,name=slot,proto3" json:"slot,omitempty"` // optional; first empty slot wins when unset
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignUnmatchedReportRequest) Reset() {
	*x = AssignUnmatchedReportRequest{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignUnmatchedReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignUnmatchedReportRequest) ProtoMessage() {}

func (x *AssignUnmatchedReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignUnmatchedReportRequest.ProtoReflect.Descriptor instead.
func (*AssignUnmatchedReportRequest) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{11}
}

func (x *AssignUnmatchedReportRequest) GetUnmatchedId() string {
	if x != nil {
		return x.UnmatchedId
	}
	return ""
}

func (x *AssignUnmatchedReportRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *AssignUnmatchedReportRequest) GetSlot() string {
	if x != nil {
		return x.Slot
	}
	return ""
}

type Document struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CustomerId           string                 `protobuf:"bytes,2,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	Filename             string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	DocKey               string                 `protobuf:"bytes,4,opt,name=doc_key,json=docKey,proto3" json:"doc_key,omitempty"`
	Status               string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	SimilarityReportPath string                 `protobuf:"bytes,6,opt,name=similarity_report_path,json=similarityReportPath,proto3" json:"similarity_report_path,omitempty"`
	AiReportPath         string                 `protobuf:"bytes,7,opt,name=ai_report_path,json=aiReportPath,proto3" json:"ai_report_path,omitempty"`
	NeedsReview          bool                   `protobuf:"varint,8,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	ReviewReason         string                 `protobuf:"bytes,9,opt,name=review_reason,json=reviewReason,proto3" json:"review_reason,omitempty"`
	CreatedAt            string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt            string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[12]
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
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{12}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetDocKey() string {
	if x != nil {
		return x.DocKey
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetSimilarityReportPath() string {
	if x != nil {
		return x.SimilarityReportPath
	}
	return ""
}

func (x *Document) GetAiReportPath() string {
	if x != nil {
		return x.AiReportPath
	}
	return ""
}

func (x *Document) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Document) GetReviewReason() string {
	if x != nil {
		return x.ReviewReason
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type AssignUnmatchedReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Completed     bool                   `protobuf:"varint,2,opt,name=completed,proto3" json:"completed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignUnmatchedReportResponse) Reset() {
	*x = AssignUnmatchedReportResponse{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignUnmatchedReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignUnmatchedReportResponse) ProtoMessage() {}

func (x *AssignUnmatchedReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignUnmatchedReportResponse.ProtoReflect.Descriptor instead.
func (*AssignUnmatchedReportResponse) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{13}
}

func (x *AssignUnmatchedReportResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *AssignUnmatchedReportResponse) GetCompleted() bool {
	if x != nil {
		return x.Completed
	}
	return false
}

type ClearReviewFlagRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearReviewFlagRequest) Reset() {
	*x = ClearReviewFlagRequest{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearReviewFlagRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearReviewFlagRequest) ProtoMessage() {}

func (x *ClearReviewFlagRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearReviewFlagRequest.ProtoReflect.Descriptor instead.
func (*ClearReviewFlagRequest) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{14}
}

func (x *ClearReviewFlagRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ClearReviewFlagResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearReviewFlagResponse) Reset() {
	*x = ClearReviewFlagResponse{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearReviewFlagResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearReviewFlagResponse) ProtoMessage() {}

func (x *ClearReviewFlagResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearReviewFlagResponse.ProtoReflect.Descriptor instead.
func (*ClearReviewFlagResponse) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{15}
}

func (x *ClearReviewFlagResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ExportUnmatchedReportsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OnlyUnresolved bool                   `protobuf:"varint,1,opt,name=only_unresolved,json=onlyUnresolved,proto3" json:"only_unresolved,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExportUnmatchedReportsRequest) Reset() {
	*x = ExportUnmatchedReportsRequest{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportUnmatchedReportsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportUnmatchedReportsRequest) ProtoMessage() {}

func (x *ExportUnmatchedReportsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportUnmatchedReportsRequest.ProtoReflect.Descriptor instead.
func (*ExportUnmatchedReportsRequest) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{16}
}

func (x *ExportUnmatchedReportsRequest) GetOnlyUnresolved() bool {
	if x != nil {
		return x.OnlyUnresolved
	}
	return false
}

type ExportUnmatchedReportsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportUnmatchedReportsResponse) Reset() {
	*x = ExportUnmatchedReportsResponse{}
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportUnmatchedReportsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportUnmatchedReportsResponse) ProtoMessage() {}

func (x *ExportUnmatchedReportsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_reconciler_v1_reconciler_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportUnmatchedReportsResponse.ProtoReflect.Descriptor instead.
func (*ExportUnmatchedReportsResponse) Descriptor() ([]byte, []int) {
	return file_reconciler_v1_reconciler_proto_rawDescGZIP(), []int{17}
}

func (x *ExportUnmatchedReportsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_reconciler_v1_reconciler_proto protoreflect.FileDescriptor

const file_reconciler_v1_reconciler_proto_rawDesc = "" +
	"\n" +
	"\x1ereconciler/v1/reconciler.proto\x12\rreconciler.v1\"F\n" +
	"\n" +
	"ReportFile\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12\x1b\n" +
	"\tfile_path\x18\x02 \x01(\tR\bfilePath\"H\n" +
	"\x15ReconcileBatchRequest\x12/\n" +
	"\x05files\x18\x01 \x03(\v2\x19.reconciler.v1.ReportFileR\x05files\"\xb3\x01\n" +
	"\aMapping\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x10\n" +
	"\x03key\x18\x02 \x01(\tR\x03key\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12\x1b\n" +
	"\tfile_path\x18\x04 \x01(\tR\bfilePath\x12\x12\n" +
	"\x04slot\x18\x05 \x01(\tR\x04slot\x12'\n" +
	"\x0falready_applied\x18\x06 \x01(\bR\x0ealreadyApplied\"t\n" +
	"\x0eUnmatchedEntry\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12\x1b\n" +
	"\tfile_path\x18\x02 \x01(\tR\bfilePath\x12\x10\n" +
	"\x03key\x18\x03 \x01(\tR\x03key\x12\x16\n" +
	"\x06reason\x18\x04 \x01(\tR\x06reason\"W\n" +
	"\n" +
	"ReviewFlag\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x10\n" +
	"\x03key\x18\x02 \x01(\tR\x03key\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\"q\n" +
	"\x11CompletedDocument\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vcustomer_id\x18\x02 \x01(\tR\n" +
	"customerId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\"\xfb\x01\n" +
	"\n" +
	"BatchStats\x12#\n" +
	"\rtotal_reports\x18\x01 \x01(\x05R\ftotalReports\x12!\n" +
	"\fmapped_count\x18\x02 \x01(\x05R\vmappedCount\x12'\n" +
	"\x0funmatched_count\x18\x03 \x01(\x05R\x0eunmatchedCount\x12,\n" +
	"\x12needs_review_count\x18\x04 \x01(\x05R\x10needsReviewCount\x12'\n" +
	"\x0fcompleted_count\x18\x05 \x01(\x05R\x0ecompletedCount\x12%\n" +
	"\x0eapply_failures\x18\x06 \x01(\x05R\rapplyFailures\"\xc7\x02\n" +
	"\x16ReconcileBatchResponse\x12.\n" +
	"\x06mapped\x18\x01 \x03(\v2\x16.reconciler.v1.MappingR\x06mapped\x12;\n" +
	"\tunmatched\x18\x02 \x03(\v2\x1d.reconciler.v1.UnmatchedEntryR\tunmatched\x12<\n" +
	"\fneeds_review\x18\x03 \x03(\v2\x19.reconciler.v1.ReviewFlagR\vneedsReview\x12Q\n" +
	"\x13completed_documents\x18\x04 \x03(\v2 .reconciler.v1.CompletedDocumentR\x12completedDocuments\x12/\n" +
	"\x05stats\x18\x05 \x01(\v2\x19.reconciler.v1.BatchStatsR\x05stats\"\x8e\x02\n" +
	"\x0fUnmatchedReport\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x1d\n" +
	"\n" +
	"report_key\x18\x03 \x01(\tR\treportKey\x12\x1b\n" +
	"\tfile_path\x18\x04 \x01(\tR\bfilePath\x12\x16\n" +
	"\x06reason\x18\x05 \x01(\tR\x06reason\x12\x1a\n" +
	"\bresolved\x18\x06 \x01(\bR\bresolved\x12\x1f\n" +
	"\vdocument_id\x18\a \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1f\n" +
	"\vresolved_at\x18\t \x01(\tR\n" +
	"resolvedAt\"F\n" +
	"\x1bListUnmatchedReportsRequest\x12'\n" +
	"\x0fonly_unresolved\x18\x01 \x01(\bR\x0eonlyUnresolved\"X\n" +
	"\x1cListUnmatchedReportsResponse\x128\n" +
	"\areports\x18\x01 \x03(\v2\x1e.reconciler.v1.UnmatchedReportR\areports\"v\n" +
	"\x1cAssignUnmatchedReportRequest\x12!\n" +
	"\funmatched_id\x18\x01 \x01(\tR\vunmatchedId\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x12\n" +
	"\x04slot\x18\x03 \x01(\tR\x04slot\"\xea\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vcustomer_id\x18\x02 \x01(\tR\n" +
	"customerId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x17\n" +
	"\adoc_key\x18\x04 \x01(\tR\x06docKey\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x124\n" +
	"\x16similarity_report_path\x18\x06 \x01(\tR\x14similarityReportPath\x12$\n" +
	"\x0eai_report_path\x18\a \x01(\tR\faiReportPath\x12!\n" +
	"\fneeds_review\x18\b \x01(\bR\vneedsReview\x12#\n" +
	"\rreview_reason\x18\t \x01(\tR\freviewReason\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"r\n" +
	"\x1dAssignUnmatchedReportResponse\x123\n" +
	"\bdocument\x18\x01 \x01(\v2\x17.reconciler.v1.DocumentR\bdocument\x12\x1c\n" +
	"\tcompleted\x18\x02 \x01(\bR\tcompleted\"9\n" +
	"\x16ClearReviewFlagRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"N\n" +
	"\x17ClearReviewFlagResponse\x123\n" +
	"\bdocument\x18\x01 \x01(\v2\x17.reconciler.v1.DocumentR\bdocument\"H\n" +
	"\x1dExportUnmatchedReportsRequest\x12'\n" +
	"\x0fonly_unresolved\x18\x01 \x01(\bR\x0eonlyUnresolved\"4\n" +
	"\x1eExportUnmatchedReportsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xb0\x04\n" +
	"\x11ReconcilerService\x12]\n" +
	"\x0eReconcileBatch\x12$.reconciler.v1.ReconcileBatchRequest\x1a%.reconciler.v1.ReconcileBatchResponse\x12o\n" +
	"\x14ListUnmatchedReports\x12*.reconciler.v1.ListUnmatchedReportsRequest\x1a+.reconciler.v1.ListUnmatchedReportsResponse\x12r\n" +
	"\x15AssignUnmatchedReport\x12+.reconciler.v1.AssignUnmatchedReportRequest\x1a,.reconciler.v1.AssignUnmatchedReportResponse\x12`\n" +
	"\x0fClearReviewFlag\x12%.reconciler.v1.ClearReviewFlagRequest\x1a&.reconciler.v1.ClearReviewFlagResponse\x12u\n" +
	"\x16ExportUnmatchedReports\x12,.reconciler.v1.ExportUnmatchedReportsRequest\x1a-.reconciler.v1.ExportUnmatchedReportsResponseBNZLgithub.com/simdocs-io/report-reconciler/gen/proto/reconciler/v1;reconcilerpbb\x06proto3"

var (
	file_reconciler_v1_reconciler_proto_rawDescOnce sync.Once
	file_reconciler_v1_reconciler_proto_rawDescData []byte
)

func file_reconciler_v1_reconciler_proto_rawDescGZIP() []byte {
	file_reconciler_v1_reconciler_proto_rawDescOnce.Do(func() {
		file_reconciler_v1_reconciler_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_reconciler_v1_reconciler_proto_rawDesc), len(file_reconciler_v1_reconciler_proto_rawDesc)))
	})
	return file_reconciler_v1_reconciler_proto_rawDescData
}

var file_reconciler_v1_reconciler_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_reconciler_v1_reconciler_proto_goTypes = []any{
	(*ReportFile)(nil),                     // 0: reconciler.v1.ReportFile
	(*ReconcileBatchRequest)(nil),          // 1: reconciler.v1.ReconcileBatchRequest
	(*Mapping)(nil),                        // 2: reconciler.v1.Mapping
	(*UnmatchedEntry)(nil),                 // 3: reconciler.v1.UnmatchedEntry
	(*ReviewFlag)(nil),                     // 4: reconciler.v1.ReviewFlag
	(*CompletedDocument)(nil),              // 5: reconciler.v1.CompletedDocument
	(*BatchStats)(nil),                     // 6: reconciler.v1.BatchStats
	(*ReconcileBatchResponse)(nil),         // 7: reconciler.v1.ReconcileBatchResponse
	(*UnmatchedReport)(nil),                // 8: reconciler.v1.UnmatchedReport
	(*ListUnmatchedReportsRequest)(nil),    // 9: reconciler.v1.ListUnmatchedReportsRequest
	(*ListUnmatchedReportsResponse)(nil),   // 10: reconciler.v1.ListUnmatchedReportsResponse
	(*AssignUnmatchedReportRequest)(nil),   // 11: reconciler.v1.AssignUnmatchedReportRequest
	(*Document)(nil),                       // 12: reconciler.v1.Document
	(*AssignUnmatchedReportResponse)(nil),  // 13: reconciler.v1.AssignUnmatchedReportResponse
	(*ClearReviewFlagRequest)(nil),         // 14: reconciler.v1.ClearReviewFlagRequest
	(*ClearReviewFlagResponse)(nil),        // 15: reconciler.v1.ClearReviewFlagResponse
	(*ExportUnmatchedReportsRequest)(nil),  // 16: reconciler.v1.ExportUnmatchedReportsRequest
	(*ExportUnmatchedReportsResponse)(nil), // 17: reconciler.v1.ExportUnmatchedReportsResponse
}
var file_reconciler_v1_reconciler_proto_depIdxs = []int32{
	0,  // 0: reconciler.v1.ReconcileBatchRequest.files:type_name -> reconciler.v1.ReportFile
	2,  // 1: reconciler.v1.ReconcileBatchResponse.mapped:type_name -> reconciler.v1.Mapping
	3,  // 2: reconciler.v1.ReconcileBatchResponse.unmatched:type_name -> reconciler.v1.UnmatchedEntry
	4,  // 3: reconciler.v1.ReconcileBatchResponse.needs_review:type_name -> reconciler.v1.ReviewFlag
	5,  // 4: reconciler.v1.ReconcileBatchResponse.completed_documents:type_name -> reconciler.v1.CompletedDocument
	6,  // 5: reconciler.v1.ReconcileBatchResponse.stats:type_name -> reconciler.v1.BatchStats
	8,  // 6: reconciler.v1.ListUnmatchedReportsResponse.reports:type_name -> reconciler.v1.UnmatchedReport
	12, // 7: reconciler.v1.AssignUnmatchedReportResponse.document:type_name -> reconciler.v1.Document
	12, // 8: reconciler.v1.ClearReviewFlagResponse.document:type_name -> reconciler.v1.Document
	1,  // 9: reconciler.v1.ReconcilerService.ReconcileBatch:input_type -> reconciler.v1.ReconcileBatchRequest
	9,  // 10: reconciler.v1.ReconcilerService.ListUnmatchedReports:input_type -> reconciler.v1.ListUnmatchedReportsRequest
	11, // 11: reconciler.v1.ReconcilerService.AssignUnmatchedReport:input_type -> reconciler.v1.AssignUnmatchedReportRequest
	14, // 12: reconciler.v1.ReconcilerService.ClearReviewFlag:input_type -> reconciler.v1.ClearReviewFlagRequest
	16, // 13: reconciler.v1.ReconcilerService.ExportUnmatchedReports:input_type -> reconciler.v1.ExportUnmatchedReportsRequest
	7,  // 14: reconciler.v1.ReconcilerService.ReconcileBatch:output_type -> reconciler.v1.ReconcileBatchResponse
	10, // 15: reconciler.v1.ReconcilerService.ListUnmatchedReports:output_type -> reconciler.v1.ListUnmatchedReportsResponse
	13, // 16: reconciler.v1.ReconcilerService.AssignUnmatchedReport:output_type -> reconciler.v1.AssignUnmatchedReportResponse
	15, // 17: reconciler.v1.ReconcilerService.ClearReviewFlag:output_type -> reconciler.v1.ClearReviewFlagResponse
	17, // 18: reconciler.v1.ReconcilerService.ExportUnmatchedReports:output_type -> reconciler.v1.ExportUnmatchedReportsResponse
	14, // [14:19] is the sub-list for method output_type
	9,  // [9:14] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_reconciler_v1_reconciler_proto_init() }
func file_reconciler_v1_reconciler_proto_init() {
	if File_reconciler_v1_reconciler_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_reconciler_v1_reconciler_proto_rawDesc), len(file_reconciler_v1_reconciler_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_reconciler_v1_reconciler_proto_goTypes,
		DependencyIndexes: file_reconciler_v1_reconciler_proto_depIdxs,
		MessageInfos:      file_reconciler_v1_reconciler_proto_msgTypes,
	}.Build()
	File_reconciler_v1_reconciler_proto = out.File
	file_reconciler_v1_reconciler_proto_goTypes = nil
	file_reconciler_v1_reconciler_proto_depIdxs = nil
}
