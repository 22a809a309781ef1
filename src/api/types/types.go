package types

// Agents
type Cat struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	Name              string  `gorm:"size:128;not null" json:"name"`
	YearsOfExperience int     `gorm:"not null" json:"years_of_experience"`
	Breed             string  `gorm:"size:128;not null" json:"breed"`
	Salary            float64 `gorm:"not null" json:"salary"`
}

// Missions reference their cat; deleting a cat does not cascade here.
type Mission struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	CatID     *uint    `gorm:"index" json:"cat_id"`
	Completed bool     `gorm:"default:false" json:"completed"`
	Targets   []Target `gorm:"foreignKey:MissionID;constraint:OnDelete:CASCADE" json:"targets"`
}

// Targets don't repeat within one mission
type Target struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	MissionID uint   `gorm:"not null;uniqueIndex:uq_mission_target_name" json:"mission_id"`
	Name      string `gorm:"size:128;not null;uniqueIndex:uq_mission_target_name" json:"name"`
	Country   string `gorm:"size:64;not null" json:"country"`
	Notes     string `gorm:"type:text" json:"notes"`
	Completed bool   `gorm:"default:false" json:"completed"`
}
