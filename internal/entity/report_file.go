package entity

// ReportFile is one admin-uploaded report in an incoming batch. The file
// already sits in durable storage; FilePath is its storage location.
type ReportFile struct {
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
	Key      string `json:"key"` // derived report identity key
}
