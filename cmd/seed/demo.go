package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Demo data follows the market's real shape: location tiers with different
// base rates, seniority multipliers, and ±20% noise, spread over the last
// six months so the trend view has history.

var tierCities = map[string][]string{
	"high": {"San Francisco", "New York", "London"},
	"mid":  {"Remote", "Berlin", "Toronto"},
	"low":  {"Bangalore", "Lagos", "Manila"},
}

var tierBase = map[string]float64{"high": 80, "mid": 40, "low": 15}

var seniorities = []struct {
	level      string
	multiplier float64
	years      int
}{
	{"Junior", 0.6, 1},
	{"Mid", 1.0, 4},
	{"Senior", 1.5, 8},
	{"Expert", 2.0, 12},
}

func seedDemoSubmissions(dsn string, count int) (int, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return 0, err
	}
	defer sqlDB.Close()

	skillIDs, err := loadIDs(sqlDB, `SELECT id FROM catalog.skills`)
	if err != nil {
		return 0, fmt.Errorf("load skills: %w", err)
	}
	cityIDs, err := loadCityIDs(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("load locations: %w", err)
	}
	if len(skillIDs) == 0 || len(cityIDs) == 0 {
		return 0, fmt.Errorf("catalog is empty; seed fixtures first")
	}

	tx, err := sqlDB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO rates.submissions
			(id, skill_id, location_id, hourly_rate, seniority_level, project_type,
			 years_experience, is_approved, is_verified, fraud_score, origin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true, false, 0, 'seed', $8)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	tiers := []string{"high", "mid", "low"}
	inserted := 0
	now := time.Now()

	for i := 0; i < count; i++ {
		tier := tiers[rand.Intn(len(tiers))]
		cities := tierCities[tier]
		cityID, ok := cityIDs[cities[rand.Intn(len(cities))]]
		if !ok {
			continue
		}

		sen := seniorities[rand.Intn(len(seniorities))]
		base := tierBase[tier] * sen.multiplier
		variance := (rand.Float64() * 0.4) - 0.2 // ±20%
		hourlyRate := float64(int(base * (1 + variance)))
		if hourlyRate < 5 {
			hourlyRate = 5
		}

		// Spread created_at over the last ~6 months.
		createdAt := now.Add(-time.Duration(rand.Intn(180*24)) * time.Hour)

		_, err := stmt.Exec(
			uuid.NewString(),
			skillIDs[rand.Intn(len(skillIDs))],
			cityID,
			hourlyRate,
			sen.level,
			"Hourly",
			sen.years,
			createdAt,
		)
		if err != nil {
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

func loadIDs(sqlDB *sql.DB, query string) ([]int64, error) {
	rows, err := sqlDB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func loadCityIDs(sqlDB *sql.DB) (map[string]int64, error) {
	rows, err := sqlDB.Query(`SELECT id, city FROM catalog.locations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byCity := make(map[string]int64)
	for rows.Next() {
		var id int64
		var city string
		if err := rows.Scan(&id, &city); err != nil {
			return nil, err
		}
		byCity[city] = id
	}
	return byCity, rows.Err()
}
