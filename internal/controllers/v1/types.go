package v1

import (
	"time"

	fb_uuid "github.com/finance-buddy/backend/internal/uuid"
)

type URIID struct {
	ID fb_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	Month time.Time `uri:"month" time_format:"2006-01" time_utc:"1" example:"2023-04" binding:"required"` // Year and month in YYYY-MM format
}
