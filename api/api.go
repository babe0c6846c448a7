// Package api declares the wire types of the PhotoDeck processing backend.
// These are backend contracts this client consumes but does not define; the
// timestamps are carried as the ISO strings the backend emits.
package api

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	// AccessToken is the bearer credential presented on every API call.
	// Structurally a JWT whose payload carries tenant_id and email claims,
	// but this client treats it as opaque apart from advisory decoding.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type,omitempty"`
}

// Tenant is an isolated customer account within the platform, identified by
// a numeric id and a URL-safe slug.
type Tenant struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	CustomDomain *string `json:"custom_domain,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// ImageAsset is an uploaded image and its processing artifacts.
type ImageAsset struct {
	ID            int64   `json:"id"`
	TenantID      int64   `json:"tenant_id"`
	UploadedByID  int64   `json:"uploaded_by_id"`
	OriginalPath  string  `json:"original_path"`
	ProcessedPath *string `json:"processed_path,omitempty"`
	ThumbnailPath *string `json:"thumbnail_path,omitempty"`
	Status        string  `json:"status"`
	MetaJSON      *string `json:"meta_json,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// TaskStatus is the lifecycle state of a processing task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskProcessing TaskStatus = "processing"
	TaskCompleted  TaskStatus = "completed"
	TaskFailed     TaskStatus = "failed"
)

// Terminal reports whether the status will never change again.
func (s TaskStatus) Terminal() bool {
	return s == TaskCompleted || s == TaskFailed
}

// Task is one run of the processing pipeline (crop, round corners, tag,
// generate the PPT) over an image asset. The pipeline itself runs in the
// backend; this client only creates tasks and polls them.
type Task struct {
	ID           int64      `json:"id"`
	TenantID     int64      `json:"tenant_id"`
	ImageAssetID int64      `json:"image_asset_id"`
	Status       TaskStatus `json:"status"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	ResultPath   *string    `json:"result_path,omitempty"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
}

// TaskCreateRequest triggers processing of an uploaded asset.
type TaskCreateRequest struct {
	TenantID     int64   `json:"tenant_id"`
	ImageAssetID int64   `json:"image_asset_id"`
	ConfigPath   *string `json:"config_path,omitempty"`
	OutputDir    *string `json:"output_dir,omitempty"`
}

// UploadResponse describes where an uploaded file landed.
type UploadResponse struct {
	StorageKey string `json:"storage_key"`
	URL        string `json:"url"`
	LocalPath  string `json:"local_path"`
	Filename   string `json:"filename"`
}

// TenantCreateRequest provisions a new tenant (superusers only).
type TenantCreateRequest struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	CustomDomain *string `json:"custom_domain,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
}

// RegisterRequest creates a user within an existing tenant.
type RegisterRequest struct {
	TenantID    int64  `json:"tenant_id"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name,omitempty"`
	IsSuperuser bool   `json:"is_superuser,omitempty"`
}

// User is the backend's view of an account.
type User struct {
	ID          int64  `json:"id"`
	TenantID    int64  `json:"tenant_id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name,omitempty"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}
