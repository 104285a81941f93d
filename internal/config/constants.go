package config

// Application constants for the mobile catalog analyzer.
const (
	AppName    = "Mobile Catalog Analyzer"
	AppVersion = "1.2.0"

	// Directory layout (relative to the data directory)
	DefaultDataDir       = "data"
	DefaultRawDir        = "raw"
	DefaultPreprocessDir = "preprocess"
	DefaultProcessedDir  = "processed"
	DefaultFiguresDir    = "figures"
	DefaultLogsDir       = "logs"

	// Well-known artifact names
	RawCatalogCSV          = "mobile.csv"
	CleanedCSV             = "mobile_cleaned.csv"
	FinalCleanedCSV        = "mobile_final_cleaned.csv"
	LaunchedCSV            = "mobile_launched.csv"
	UpcomingRumoredCSV     = "mobile_upcoming_rumored.csv"
	LaunchedCleanedCSV     = "mobile_launched_cleaned.csv"
	UpcomingCleanedCSV     = "mobile_upcoming_cleaned.csv"
	LaunchedTrendsCSV      = "brand_family_trends.csv"
	UpcomingTrendsCSV      = "upcoming_brand_family_trends.csv"
	TopUpcomingBrandsCSV   = "top_upcoming_brands.csv"
	LaunchedReportXLSX     = "launched_report.xlsx"
	UpcomingReportXLSX     = "upcoming_report.xlsx"

	// Default number of rows kept by the top-brands export
	DefaultTopN = 10

	// Default log file name, placed under the logs directory
	DefaultLogFile = "analyzer.log"
)

// Canonical column names produced by the column normalizer.
const (
	ColBrandName      = "Brand Name"
	ColSpecScore      = "Spec Score"
	ColRating         = "Rating"
	ColPrice          = "Price"
	ColImagePreview   = "Image Preview"
	ColTag            = "Tag"
	ColSIMNetwork     = "SIM / Network"
	ColProcessor      = "Processor"
	ColStorage        = "Storage"
	ColBattery        = "Battery"
	ColDisplay        = "Display"
	ColCamera         = "Camera"
	ColMemoryExternal = "Memory External"
	ColOSVersion      = "OS Version"
	ColFMRadio        = "FM Radio"
)

// Derived column names produced by the field splitter and later stages.
const (
	ColProcessorName        = "Processor Name"
	ColProcessorType        = "Processor Type"
	ColProcessorSpeed       = "Processor Speed"
	ColRAM                  = "RAM"
	ColInternalStorage      = "Internal Storage"
	ColBatteryCapacity      = "Battery Capacity"
	ColBatteryFeature       = "Battery Feature"
	ColSIMType              = "SIM Type"
	ColExtraFeature         = "Extra Feature"
	ColDisplaySize          = "Display Size"
	ColDisplayResolution    = "Display Resolution"
	ColDisplayFeature       = "Display Feature"
	ColBrandFamily          = "Brand Family"
	ColProcessorFamily      = "Processor Family"
	ColDisplaySizeRange     = "Display Size Range"
	ColBatteryCapacityRange = "Battery Capacity Range"
	ColPriceRange           = "Price Range"
	ColRAMGB                = "RAM_GB"
	ColStorageGB            = "Storage_GB"
)

// DefaultRequiredColumns is the record-cleaner required-field set: a row
// survives initial cleaning only when every one of these (that exists in the
// input at all) is present and non-blank.
func DefaultRequiredColumns() []string {
	return []string{ColBrandName, ColPrice, ColSpecScore, ColRating, ColTag}
}

// SegmentRequiredColumns is the stricter per-segment filter applied before
// family classification.
func SegmentRequiredColumns() []string {
	return []string{ColBrandName, ColSpecScore, ColRating, ColPrice, ColProcessorName, ColImagePreview}
}
