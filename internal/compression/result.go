package compression

import "fmt"

// Result holds the size statistics of a verified successful run.
type Result struct {
	InputPath    string
	OutputPath   string
	Level        int
	InputSize    int64
	OutputSize   int64
	Ratio        float64
	PercentSaved float64
}

// NewResult computes the ratio and percent-saved statistics for a size pair.
func NewResult(req Request, inputSize, outputSize int64) Result {
	r := Result{
		InputPath:  req.InputPath,
		OutputPath: req.OutputPath,
		Level:      req.Level,
		InputSize:  inputSize,
		OutputSize: outputSize,
	}
	if outputSize > 0 {
		r.Ratio = float64(inputSize) / float64(outputSize)
	}
	if inputSize > 0 {
		r.PercentSaved = (1 - float64(outputSize)/float64(inputSize)) * 100
	}
	return r
}

// FormatSize renders a byte count as a human-readable string.
func FormatSize(bytes int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(gb))
	case bytes >= mb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
