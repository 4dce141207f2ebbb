package domain

type ScanState string

const (
	ScanStateIdle      ScanState = "idle"
	ScanStateScanning  ScanState = "scanning"
	ScanStateMatched   ScanState = "matched"
	ScanStateUnmatched ScanState = "unmatched"
)
