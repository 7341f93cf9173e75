package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Page kinds. Each kind documents the expected block keys in Blocks.
const (
	PageKindStandard = "standard" // blocks: heading, body, image_url
	PageKindLanding  = "landing"  // blocks: hero, sections, cta
	PageKindFAQ      = "faq"      // blocks: entries ([{question, answer}])
)

// PageSchemaVersion is the current Blocks layout version. Bump when the
// documented block keys for a kind change shape.
const PageSchemaVersion = 1

var pageKinds = map[string]bool{
	PageKindStandard: true,
	PageKindLanding:  true,
	PageKindFAQ:      true,
}

// ValidPageKind reports whether kind names a known page layout.
func ValidPageKind(kind string) bool {
	return pageKinds[kind]
}

// Page is admin-managed static content addressed by slug. Blocks is a
// kind-tagged, versioned JSONB map rather than a free-form payload.
type Page struct {
	ID            uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug          string            `gorm:"size:120;not null;uniqueIndex" json:"slug"`
	Title         string            `gorm:"size:200;not null" json:"title"`
	Kind          string            `gorm:"size:20;not null;default:'standard'" json:"kind"`
	SchemaVersion int               `gorm:"not null;default:1" json:"schema_version"`
	Blocks        datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"blocks"`
	Published     bool              `gorm:"default:false;index" json:"published"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`
}
