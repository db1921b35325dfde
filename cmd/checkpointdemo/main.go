// Standalone scratch program for trying out checkpoint persistence.
// Not wired into the service.
package main

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Checkpoint struct {
	ID           uint   `gorm:"primaryKey"`
	ThreadID     string `gorm:"index:idx_checkpoint,unique"`
	CheckpointNS string `gorm:"index:idx_checkpoint,unique"`
	CheckpointID string `gorm:"index:idx_checkpoint,unique"`
	TS           string
	Data         string
}

func main() {
	db, err := gorm.Open(sqlite.Open("checkpoints.db"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&Checkpoint{}); err != nil {
		log.Fatal(err)
	}

	cp := Checkpoint{
		ThreadID:     "1",
		CheckpointNS: "",
		CheckpointID: "0c62ca34-ac19-445d-bbb0-5b4984975b2a",
		TS:           "2023-05-03T10:00:00Z",
		Data:         `{"key": "value"}`,
	}
	if err := db.Create(&cp).Error; err != nil {
		log.Fatal(err)
	}

	fmt.Printf("saved checkpoint: thread_id=%s checkpoint_ns=%q checkpoint_id=%s\n",
		cp.ThreadID, cp.CheckpointNS, cp.CheckpointID)
}
