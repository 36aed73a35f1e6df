// File: internal/job/model.go
package job

import (
	"time"

	"hospital_jobs_backend/internal/common"

	"github.com/google/uuid"
)

// Job represents a job posting. UserID is a weak reference to the posting
// user: deleting a user does not cascade, and the reference is not an
// ownership lock unless enforcement is switched on in config.
type Job struct {
	common.BaseModel           // Embeds ID, CreatedAt, UpdatedAt
	Title     string    `gorm:"type:varchar(200);not null"`
	Company   string    `gorm:"type:varchar(200);not null"`
	Location  string    `gorm:"type:varchar(200);not null"`
	JobType   string    `gorm:"type:varchar(100);not null"`
	ApplyLink string    `gorm:"type:text;not null"`
	Salary    string    `gorm:"type:varchar(100)"`
	PostedAt  time.Time `gorm:"column:posted_at;not null;index"`
	Contact   string    `gorm:"type:varchar(255)"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the table name for the Job model.
func (Job) TableName() string {
	return "jobs"
}

// --- DTOs for API requests/responses ---

// RegisterJobRequest defines the body of POST /api/registerjob. Field names
// follow the wire contract of the public API.
type RegisterJobRequest struct {
	Title     string `json:"title" binding:"required,max=200"`
	Company   string `json:"company" binding:"required,max=200"`
	Location  string `json:"location" binding:"required,max=200"`
	JobType   string `json:"job_type" binding:"required,max=100"`
	ApplyLink string `json:"apply_link" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Contact   string `json:"contact" binding:"required,max=255"`
	UserID    string `json:"userId" binding:"required,uuid"`
	JobSalary string `json:"jobSalary" binding:"required,max=100"`
}

// UserJobsRequest defines the body of POST /api/getuseruploadedjobs.
type UserJobsRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
}

// DeleteJobRequest defines the body of POST /api/deletejob. UserID is only
// consulted when ownership enforcement is enabled.
type DeleteJobRequest struct {
	JobID  string `json:"jobId" binding:"required,uuid"`
	UserID string `json:"userId" binding:"omitempty,uuid"`
}

// Response is the fixed job projection used by every list endpoint: id plus
// the public columns. Posting date and owner are intentionally absent,
// matching the projection discipline of the user endpoints.
type Response struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
	JobType   string    `json:"job_type"`
	ApplyLink string    `json:"apply_link"`
	Contact   string    `json:"contact"`
	Salary    string    `json:"salary"`
}

// ToResponse converts a Job model to its API projection.
func ToResponse(j *Job) Response {
	return Response{
		ID:        j.ID,
		Title:     j.Title,
		Company:   j.Company,
		Location:  j.Location,
		JobType:   j.JobType,
		ApplyLink: j.ApplyLink,
		Contact:   j.Contact,
		Salary:    j.Salary,
	}
}

// ToResponses maps a result set to the API projection.
func ToResponses(jobs []Job) []Response {
	out := make([]Response, len(jobs))
	for i := range jobs {
		out[i] = ToResponse(&jobs[i])
	}
	return out
}
