// Package scan orchestrates the label-extraction pipeline: decode the image
// buffer, then route to barcode decoding or to the preprocess → OCR → parse
// chain depending on the requested field kind.
//
// The scanner is stateless per call; concurrent scans of independent images
// need no coordination. Only an undecodable image buffer surfaces as an
// error — every other failure mode (no barcode, no text, implausible values)
// comes back as a structured result with empty content and zero confidence.
package scan
