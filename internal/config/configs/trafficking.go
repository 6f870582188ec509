package configs

// Trafficking holds overrides for the Setup sheet's named cells and batch
// options. A non-empty override wins over the workbook value.
type Trafficking struct {
	ProfileID    string `env:"PROFILE_ID"`
	FolderID     string `env:"FOLDER_ID"`
	TimeZone     string `env:"TIME_ZONE"`
	ProtectLists bool   `env:"PROTECT_LISTS" envDefault:"false"`
}
