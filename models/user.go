package models

// User mirrors an identity owned by the external identity provider. The row
// exists so article and comment authors can be eagerly loaded for display;
// credentials never live here. The ID is the provider's opaque subject id.
type User struct {
	ID          string `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	DisplayName string `json:"displayName" db:"display_name" gorm:"type:text;not null"`
}
