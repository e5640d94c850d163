package bench

import (
	"database/sql"
	"fmt"
	"github.com/gostonefire/hashprobe/internal/conf"
	_ "github.com/mattn/go-sqlite3"
	"time"
)

// SaveResults - Appends benchmark results to an sqlite database file, creating the file and
// its results table if they do not exist. All results are stamped with the same run time.
func SaveResults(path string, results []Result) (err error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		err = fmt.Errorf("error while opening results database: %s", err)
		return
	}
	defer db.Close()

	_, err = db.Exec(conf.ResultsDDL)
	if err != nil {
		err = fmt.Errorf("error while creating results table: %s", err)
		return
	}

	tx, err := db.Begin()
	if err != nil {
		err = fmt.Errorf("error while starting results transaction: %s", err)
		return
	}

	stmt, err := tx.Prepare(conf.ResultsInsert)
	if err != nil {
		_ = tx.Rollback()
		err = fmt.Errorf("error while preparing results statement: %s", err)
		return
	}
	defer stmt.Close()

	runAt := time.Now().UTC().Format(time.RFC3339)
	for _, result := range results {
		_, err = stmt.Exec(runAt, result.Technique, result.HashScheme, result.FillRatio,
			result.Capacity, result.Entries, result.Collisions, result.LoadFactor,
			result.Saturated, result.Elapsed.Nanoseconds())
		if err != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("error while inserting result row: %s", err)
			return
		}
	}

	err = tx.Commit()
	if err != nil {
		err = fmt.Errorf("error while committing results: %s", err)
	}

	return
}

// LoadResults - Reads back all benchmark results stored in an sqlite database file,
// in the order they were stored.
func LoadResults(path string) (results []Result, err error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		err = fmt.Errorf("error while opening results database: %s", err)
		return
	}
	defer db.Close()

	rows, err := db.Query(conf.ResultsSelect)
	if err != nil {
		err = fmt.Errorf("error while reading results: %s", err)
		return
	}
	defer rows.Close()

	var result Result
	var elapsed int64
	for rows.Next() {
		err = rows.Scan(&result.Technique, &result.HashScheme, &result.FillRatio, &result.Capacity,
			&result.Entries, &result.Collisions, &result.LoadFactor, &result.Saturated, &elapsed)
		if err != nil {
			err = fmt.Errorf("error while reading result row: %s", err)
			return
		}

		result.Elapsed = time.Duration(elapsed)
		results = append(results, result)
	}

	err = rows.Err()
	if err != nil {
		err = fmt.Errorf("error while reading results: %s", err)
	}

	return
}
