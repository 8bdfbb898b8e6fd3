package main

import (
	"log"
	"os"

	"github.com/segmentio/parquet-go"
)

// Member mirrors the columns of sample.csv
type Member struct {
	ID     int64  `parquet:"id"`
	TeamID int64  `parquet:"team_id"`
	Name   string `parquet:"name"`
	Note   string `parquet:"note"`
}

func main() {
	members := []Member{
		{ID: 1, TeamID: 1, Name: "name1", Note: "note1"},
		{ID: 2, TeamID: 1, Name: "name2", Note: "note2"},
		{ID: 3, TeamID: 2, Name: "name3", Note: "note3"},
		{ID: 4, TeamID: 3, Name: "name4", Note: "note4"},
		{ID: 5, TeamID: 4, Name: "name5", Note: "note5"},
		{ID: 6, TeamID: 1, Name: "name6", Note: "note5"},
		{ID: 7, TeamID: 2, Name: "name7", Note: "note6"},
	}

	file, err := os.Create("sample.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Member](file)
	defer writer.Close()

	if _, err := writer.Write(members); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated sample.parquet with 7 members")
}
