package schema

// Custom string types for type safety.
type (
	// Granularity represents the calendar period size used for bucketing.
	Granularity string

	// AnchorSource identifies which ranked source resolved an entry's date anchor.
	AnchorSource string

	// ChartKind represents the aggregate shape produced for a property.
	ChartKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// CacheBackend represents the database backend for durable caching.
	CacheBackend string
)

// All bucketing granularities supported.
const (
	Daily     Granularity = "daily" // default
	Weekly    Granularity = "weekly"
	Monthly   Granularity = "monthly"
	Quarterly Granularity = "quarterly"
	Yearly    Granularity = "yearly"
)

// All date anchor sources supported.
const (
	PropertySource AnchorSource = "property"
	FilenameSource AnchorSource = "filename"
	MetadataSource AnchorSource = "metadata"
)

// All chart kinds supported.
const (
	HeatmapChart  ChartKind = "heatmap"
	SeriesChart   ChartKind = "series"
	PieChart      ChartKind = "pie"
	ScatterChart  ChartKind = "scatter"
	BubbleChart   ChartKind = "bubble"
	TagCloudChart ChartKind = "tags"
	TimelineChart ChartKind = "timeline"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     CacheBackend = "sqlite" // default
	MySQLBackend      CacheBackend = "mysql"
	PostgreSQLBackend CacheBackend = "postgresql"
	NoneBackend       CacheBackend = "none"
)

// AllGranularities returns a list of all supported granularities.
var AllGranularities = []Granularity{Daily, Weekly, Monthly, Quarterly, Yearly}

// ValidGranularities lists all valid bucketing granularities.
var ValidGranularities = map[Granularity]struct{}{
	Daily:     {},
	Weekly:    {},
	Monthly:   {},
	Quarterly: {},
	Yearly:    {},
}

// ValidChartKinds lists all valid chart kinds.
var ValidChartKinds = map[ChartKind]struct{}{
	HeatmapChart:  {},
	SeriesChart:   {},
	PieChart:      {},
	ScatterChart:  {},
	BubbleChart:   {},
	TagCloudChart: {},
	TimelineChart: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[CacheBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
