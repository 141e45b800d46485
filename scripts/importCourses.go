package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"

	"lms/config"
	"lms/database"
	courseModels "lms/models/course"
)

// Bulk-imports a course catalog from courses.csv. Rows are matched on title:
// existing courses are updated in place, new ones are created as drafts unless
// the published column says otherwise.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	file, err := os.Open("courses.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		title := strings.TrimSpace(getField(row, headerIndex, "title"))
		if title == "" {
			log.Printf("Row %d: missing title, skipping", i+1)
			skipped++
			continue
		}

		course := courseModels.Course{
			Title:        title,
			Description:  getField(row, headerIndex, "description"),
			Price:        parseFloat(getField(row, headerIndex, "price")),
			IsFree:       parseBool(getField(row, headerIndex, "is_free")),
			ThumbnailURL: getField(row, headerIndex, "thumbnail_url"),
			IsPublished:  parseBool(getField(row, headerIndex, "published")),
		}
		if discount := parseFloat(getField(row, headerIndex, "discount_price")); discount > 0 {
			course.DiscountPrice = &discount
		}
		if course.IsFree {
			course.Price = 0
			course.DiscountPrice = nil
		}

		var existing courseModels.Course
		err := database.Database.Db.
			Where("title = ? AND is_deleted = ?", title, false).
			First(&existing).Error
		if err == nil {
			existing.Description = course.Description
			existing.Price = course.Price
			existing.DiscountPrice = course.DiscountPrice
			existing.IsFree = course.IsFree
			existing.ThumbnailURL = course.ThumbnailURL
			existing.IsPublished = course.IsPublished
			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Row %d: failed to update %q: %v", i+1, title, err)
				skipped++
				continue
			}
			updated++
			continue
		}

		if err := database.Database.Db.Create(&course).Error; err != nil {
			log.Printf("Row %d: failed to insert %q: %v", i+1, title, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("Import done: %d inserted, %d updated, %d skipped", inserted, updated, skipped)
}

func getField(row []string, headerIndex map[string]int, name string) string {
	idx, ok := headerIndex[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}
