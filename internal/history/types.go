package history

import "time"

// Record is one completed compression run.
type Record struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	InputPath    string    `json:"input_path"`
	OutputPath   string    `json:"output_path"`
	Level        int       `json:"level"`
	InputSize    int64     `json:"input_size"`
	OutputSize   int64     `json:"output_size"`
	Ratio        float64   `json:"ratio"`
	PercentSaved float64   `json:"percent_saved"`
	CreatedAt    time.Time `json:"created_at"`
}
