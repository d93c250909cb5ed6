package compression

import "fmt"

const (
	MinLevel     = 1
	MaxLevel     = 5
	DefaultLevel = 3
)

// Downsampling algorithms understood by Ghostscript.
const (
	FilterBicubic   = "/Bicubic"
	FilterAverage   = "/Average"
	FilterSubsample = "/Subsample"
)

// Profile holds the fixed Ghostscript configuration for one compression level.
// Higher levels trade image fidelity for smaller output.
type Profile struct {
	Level         int
	Preset        string // -dPDFSETTINGS value
	Compatibility string // -dCompatibilityLevel value
	ColorDPI      int
	GrayDPI       int
	MonoDPI       int
	ColorFilter   string // downsampling algorithm per channel
	GrayFilter    string
	MonoFilter    string
	JPEGQuality   int
	StripFonts    bool // disable embedding, subset and compress what remains
	ConvertCMYK   bool
	DetectDupes   bool
	Optimize      bool
}

var profiles = map[int]Profile{
	1: {
		Level: 1, Preset: "/prepress", Compatibility: "1.7",
		ColorDPI: 300, GrayDPI: 300, MonoDPI: 300,
		ColorFilter: FilterBicubic, GrayFilter: FilterBicubic, MonoFilter: FilterBicubic,
		JPEGQuality: 95,
	},
	2: {
		Level: 2, Preset: "/printer", Compatibility: "1.6",
		ColorDPI: 150, GrayDPI: 150, MonoDPI: 200,
		ColorFilter: FilterBicubic, GrayFilter: FilterBicubic, MonoFilter: FilterBicubic,
		JPEGQuality: 85,
	},
	3: {
		Level: 3, Preset: "/ebook", Compatibility: "1.5",
		ColorDPI: 110, GrayDPI: 110, MonoDPI: 150,
		ColorFilter: FilterAverage, GrayFilter: FilterAverage, MonoFilter: FilterBicubic,
		JPEGQuality: 80,
	},
	4: {
		Level: 4, Preset: "/ebook", Compatibility: "1.5",
		ColorDPI: 96, GrayDPI: 96, MonoDPI: 150,
		ColorFilter: FilterAverage, GrayFilter: FilterAverage, MonoFilter: FilterSubsample,
		JPEGQuality: 75,
	},
	5: {
		Level: 5, Preset: "/screen", Compatibility: "1.4",
		ColorDPI: 72, GrayDPI: 72, MonoDPI: 72,
		ColorFilter: FilterAverage, GrayFilter: FilterAverage, MonoFilter: FilterSubsample,
		JPEGQuality: 50,
		StripFonts: true, ConvertCMYK: true, DetectDupes: true, Optimize: true,
	},
}

// ProfileForLevel returns the fixed profile for a level in [MinLevel, MaxLevel].
// Out-of-range levels are rejected, not defaulted.
func ProfileForLevel(level int) (Profile, error) {
	p, ok := profiles[level]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidLevel, level, MinLevel, MaxLevel)
	}
	return p, nil
}

// Args builds the full Ghostscript argument vector for a run: the shared base
// configuration, the profile directives, the output destination and finally
// the input path, which Ghostscript requires as the last argument.
func (p Profile) Args(inputPath, outputPath string) []string {
	args := []string{
		"-sDEVICE=pdfwrite",
		"-dPDFSETTINGS=" + p.Preset,
		"-dCompatibilityLevel=" + p.Compatibility,
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-dSAFER",
		"-dDownsampleColorImages=true",
		"-dColorImageDownsampleType=" + p.ColorFilter,
		fmt.Sprintf("-dColorImageResolution=%d", p.ColorDPI),
		"-dDownsampleGrayImages=true",
		"-dGrayImageDownsampleType=" + p.GrayFilter,
		fmt.Sprintf("-dGrayImageResolution=%d", p.GrayDPI),
		"-dDownsampleMonoImages=true",
		"-dMonoImageDownsampleType=" + p.MonoFilter,
		fmt.Sprintf("-dMonoImageResolution=%d", p.MonoDPI),
		"-dAutoFilterColorImages=false",
		"-dAutoFilterGrayImages=false",
		"-dColorImageFilter=/DCTEncode",
		"-dGrayImageFilter=/DCTEncode",
		fmt.Sprintf("-dJPEGQ=%d", p.JPEGQuality),
	}

	if p.StripFonts {
		args = append(args,
			"-dEmbedAllFonts=false",
			"-dSubsetFonts=true",
			"-dCompressFonts=true",
		)
	}
	if p.ConvertCMYK {
		args = append(args, "-dConvertCMYKImagesToRGB=true")
	}
	if p.DetectDupes {
		args = append(args, "-dDetectDuplicateImages=true")
	}
	if p.Optimize {
		args = append(args, "-dOptimize=true")
	}

	args = append(args, "-sOutputFile="+outputPath, inputPath)
	return args
}
