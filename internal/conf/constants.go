package conf

// DefaultTableSize - Minimum table capacity used by a benchmark run when none is given
const DefaultTableSize int64 = 65536

// DefaultFillRatios - Fill ratios used by a benchmark run when none are given
const DefaultFillRatios string = "0.25,0.5,0.75,0.9,1.0"

// DefaultSeed - Seed for the unique key generator used by a benchmark run when none is given
const DefaultSeed int64 = 1

// ResultsDDL - Statement creating the benchmark results table if it does not exist
const ResultsDDL string = `CREATE TABLE IF NOT EXISTS results (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_at TEXT NOT NULL,
	technique TEXT NOT NULL,
	scheme TEXT NOT NULL,
	fill_ratio REAL NOT NULL,
	capacity INTEGER NOT NULL,
	entries INTEGER NOT NULL,
	collisions INTEGER NOT NULL,
	load_factor REAL NOT NULL,
	saturated INTEGER NOT NULL,
	elapsed_ns INTEGER NOT NULL
)`

// ResultsInsert - Statement appending one benchmark result row
const ResultsInsert string = `INSERT INTO results
	(run_at, technique, scheme, fill_ratio, capacity, entries, collisions, load_factor, saturated, elapsed_ns)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// ResultsSelect - Statement reading back stored benchmark result rows in insertion order
const ResultsSelect string = `SELECT technique, scheme, fill_ratio, capacity, entries, collisions, load_factor, saturated, elapsed_ns
	FROM results ORDER BY id`
