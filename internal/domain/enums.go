package domain

// RecordStatus is the translation lifecycle state of a content record.
type RecordStatus string

const (
	RecordStatusPending    RecordStatus = "pending"
	RecordStatusTranslated RecordStatus = "translated"
	RecordStatusPublished  RecordStatus = "published"
)

func (s RecordStatus) String() string { return string(s) }

func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordStatusPending, RecordStatusTranslated, RecordStatusPublished:
		return true
	}
	return false
}
