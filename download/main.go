package main

import (
	"database/sql"
	"fmt"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"os"
	"time"
)

// The download tool fetches every recorded playthrough from the database and
// writes it to disk, one folder per user, so that it can be replayed or
// inspected locally. The connection is configured through the NEWYEAR_DBUSER,
// NEWYEAR_DBPASSWORD, NEWYEAR_DBADDR and NEWYEAR_DBNAME environment variables.
func main() {
	DownloadRecordings()
}

func DownloadRecordings() {
	db := ConnectToDbSql()
	rows, err := db.Query("SELECT " +
		"start_moment, " +
		"COALESCE(end_moment, start_moment), " +
		"user, " +
		"release_version, " +
		"simulation_version, " +
		"input_version, " +
		"id, " +
		"playthrough " +
		"FROM playthroughs " +
		"WHERE playthrough IS NOT NULL")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.endMoment, &row.user,
			&row.releaseVersion, &row.simulationVersion, &row.inputVersion,
			&row.id, &row.data)
		Check(err)
		dbRows = append(dbRows, row)
	}

	for i := range dbRows {
		dir := dbRows[i].user
		err = os.MkdirAll(dir, 0755)
		Check(err)
		WriteFile(PlaythroughFilename(dir, dbRows[i]), dbRows[i].data)
	}
	fmt.Printf("downloaded %d playthroughs\n", len(dbRows))
}

// PlaythroughFilename names a downloaded playthrough after the moment it
// started and the versions needed to replay it: 20251231-235959.newyear-1-1.
func PlaythroughFilename(dir string, row dbRow) string {
	m := row.startMoment
	return fmt.Sprintf("%s/%d%02d%02d-%02d%02d%02d.newyear-%d-%d", dir,
		m.Year(), m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second(),
		row.simulationVersion, row.inputVersion)
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("NEWYEAR_DBUSER"),
		Passwd:               os.Getenv("NEWYEAR_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("NEWYEAR_DBADDR"),
		DBName:               os.Getenv("NEWYEAR_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	err = db.Ping()
	Check(err)
	return db
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}

type dbRow struct {
	startMoment       time.Time
	endMoment         time.Time
	user              string
	releaseVersion    int64
	simulationVersion int64
	inputVersion      int64
	id                uuid.UUID
	data              []byte
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
