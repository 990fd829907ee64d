// Package ocr extracts text from label images using Tesseract.
//
// The package separates the recognition engine from the extraction policy.
// Engine is the narrow interface over Tesseract (via gosseract/v2); Extractor
// runs the engine under several language configurations and keeps the best
// result. Tests substitute a fake Engine, so extraction policy is testable
// without a Tesseract installation.
//
// # Prerequisites
//
// The real engine requires Tesseract on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng tesseract-ocr-ara
//   - macOS: brew install tesseract tesseract-lang
//
// Food labels in this pipeline are bilingual, so both the "eng" and "ara"
// training data should be installed. A custom tessdata location can be set
// through the TESSDATA_PREFIX environment variable or the Tesseract struct.
//
// # Language configurations
//
// Labels may be English-only, Arabic-only, or mixed. Rather than guessing
// the script up front, the extractor runs the configured language combos in
// order (combined "eng+ara" first, then each alone) and selects the longest
// recognized text. Longer output from the same image almost always means
// more of the label was actually read.
package ocr
