// Package model holds the GORM representations of the persisted tables.
package model

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&SpotifyUserModel{},
		&AccountModel{},
		&ListModel{},
		&ListItemModel{},
		&RatingModel{},
	}
}
