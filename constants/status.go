package constants

// DocumentStatus is the canonical status for rows in document.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	DocumentStatusPending    DocumentStatus = "PENDING"    // uploaded, not yet processed
	DocumentStatusProcessing DocumentStatus = "PROCESSING" // a job is extracting it right now
	DocumentStatusProcessed  DocumentStatus = "PROCESSED"  // extraction succeeded
	DocumentStatusApproved   DocumentStatus = "APPROVED"   // user signed off on the extracted data
	DocumentStatusRejected   DocumentStatus = "REJECTED"   // validation gate refused the document
)

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"    // queued for processing
	JobStatusProcessing JobStatus = "PROCESSING" // in progress
	JobStatusCompleted  JobStatus = "COMPLETED"  // terminal success
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure
	JobStatusCancelled  JobStatus = "CANCELLED"  // terminal; stopped, not failed
)

// BatchStatus is the canonical status for rows in batch.
type BatchStatus string

const (
	BatchStatusPending    BatchStatus = "PENDING"
	BatchStatusProcessing BatchStatus = "PROCESSING"
	BatchStatusCompleted  BatchStatus = "COMPLETED"
	BatchStatusFailed     BatchStatus = "FAILED"
	BatchStatusCancelled  BatchStatus = "CANCELLED" // terminal; pending jobs never start
)

// DocumentStatuses holds the allowed values for the document status field.
var DocumentStatuses = []string{
	string(DocumentStatusPending),
	string(DocumentStatusProcessing),
	string(DocumentStatusProcessed),
	string(DocumentStatusApproved),
	string(DocumentStatusRejected),
}

// JobStatuses holds the allowed values for the extract_job status field.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusProcessing),
	string(JobStatusCompleted),
	string(JobStatusFailed),
	string(JobStatusCancelled),
}

// BatchStatuses holds the allowed values for the batch status field.
var BatchStatuses = []string{
	string(BatchStatusPending),
	string(BatchStatusProcessing),
	string(BatchStatusCompleted),
	string(BatchStatusFailed),
	string(BatchStatusCancelled),
}
