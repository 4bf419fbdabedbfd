package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/campfire/components"
	"github.com/quasilyte/gdata"
)

// SavedRecords represents the survival records stored on disk
type SavedRecords struct {
	BestWave  int `json:"bestWave"`
	BestScore int `json:"bestScore"`
	Runs      int `json:"runs"`
}

const recordsKey = "records"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for record storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "campfire",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadRecords loads the records from disk. It returns zero records when
// persistence is unavailable or nothing was saved yet.
func LoadRecords() SavedRecords {
	if !gdataInitialized || gdataManager == nil {
		return SavedRecords{}
	}

	data, err := gdataManager.LoadItem(recordsKey)
	if err != nil {
		log.Printf("Warning: Could not load records: %v", err)
		return SavedRecords{}
	}
	if len(data) == 0 {
		return SavedRecords{}
	}

	var records SavedRecords
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Warning: Could not parse saved records: %v", err)
		return SavedRecords{}
	}
	return records
}

// SaveRecords saves the records to disk
func SaveRecords(r SavedRecords) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: Could not serialize records: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(recordsKey, data); err != nil {
		log.Printf("Warning: Could not save records: %v", err)
		return err
	}
	return nil
}

// MergeRecords folds a finished run into the stored records.
func MergeRecords(r SavedRecords, wave, score int) SavedRecords {
	r.Runs++
	if wave > r.BestWave {
		r.BestWave = wave
	}
	if score > r.BestScore {
		r.BestScore = score
	}
	return r
}

// recordRun updates the session's bests and writes them to disk.
func recordRun(session *components.SessionData, wave int) {
	records := MergeRecords(LoadRecords(), wave, session.Score)
	session.BestWave = records.BestWave
	session.BestScore = records.BestScore
	_ = SaveRecords(records)
}
