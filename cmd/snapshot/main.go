package main

import (
	"flag"
	"log"

	"siconitcc/app/config"
	"siconitcc/app/database"
	"siconitcc/app/localstore"
	"siconitcc/app/models"
)

// Exports the record store to JSON files (one per collection key) or imports
// a previously exported snapshot back into the database.
//
//	go run ./cmd/snapshot -dir ./snapshot export
//	go run ./cmd/snapshot -dir ./snapshot import
func main() {
	dir := flag.String("dir", "snapshot", "snapshot directory")
	flag.Parse()

	cmd := flag.Arg(0)
	if cmd != "export" && cmd != "import" {
		log.Fatal("Usage: snapshot [-dir DIR] export|import")
	}

	store, err := localstore.New(*dir)
	if err != nil {
		log.Fatal(err)
	}

	config.Load()
	defer config.GetDB().Close()

	if cmd == "export" {
		if err := export(store); err != nil {
			log.Fatal("Export failed:", err)
		}
		log.Printf("Snapshot exported to %s", *dir)
		return
	}

	if err := importSnapshot(store); err != nil {
		log.Fatal("Import failed:", err)
	}
	log.Printf("Snapshot imported from %s", *dir)
}

func export(store *localstore.Store) error {
	db := config.GetDB()

	students, err := database.GetStudentsWithDetails(db)
	if err != nil {
		return err
	}
	if err := store.Save(localstore.KeyStudents, students); err != nil {
		return err
	}

	teachers, err := database.GetTeachers(db)
	if err != nil {
		return err
	}
	if err := store.Save(localstore.KeyTeachers, teachers); err != nil {
		return err
	}

	annotations, err := database.GetAllAnnotations(db)
	if err != nil {
		return err
	}
	if err := store.Save(localstore.KeyAnnotations, annotations); err != nil {
		return err
	}

	logs, err := database.GetAllAttendance(db)
	if err != nil {
		return err
	}
	if err := store.Save(localstore.KeyAttendance, logs); err != nil {
		return err
	}

	piar, err := database.GetAllPiarRecords(db)
	if err != nil {
		return err
	}
	if err := store.Save(localstore.KeyPiarRecords, piar); err != nil {
		return err
	}

	reports, err := database.GetAllCompetencyReports(db)
	if err != nil {
		return err
	}
	return store.Save(localstore.KeyCompetencyReports, reports)
}

// importSnapshot loads record collections back into the database. Teacher
// accounts are not imported: exports carry no password hashes, so accounts
// must be recreated through add_user.
func importSnapshot(store *localstore.Store) error {
	db := config.GetDB()

	var students []*models.Student
	if err := store.Load(localstore.KeyStudents, &students); err != nil {
		return err
	}
	if len(students) > 0 {
		if err := database.BulkCreateStudents(db, students); err != nil {
			return err
		}
		log.Printf("Imported %d students", len(students))
	}

	var annotations []*models.Annotation
	if err := store.Load(localstore.KeyAnnotations, &annotations); err != nil {
		return err
	}
	for _, a := range annotations {
		if err := database.CreateAnnotation(db, a); err != nil {
			return err
		}
	}
	if len(annotations) > 0 {
		log.Printf("Imported %d annotations", len(annotations))
	}

	var logs []*models.AttendanceLog
	if err := store.Load(localstore.KeyAttendance, &logs); err != nil {
		return err
	}
	if len(logs) > 0 {
		if err := database.CreateAttendanceBatch(db, logs); err != nil {
			return err
		}
		log.Printf("Imported %d attendance logs", len(logs))
	}

	var piar []*models.PiarRecord
	if err := store.Load(localstore.KeyPiarRecords, &piar); err != nil {
		return err
	}
	for _, p := range piar {
		if err := database.CreatePiarRecord(db, p); err != nil {
			return err
		}
	}
	if len(piar) > 0 {
		log.Printf("Imported %d PIAR records", len(piar))
	}

	var reports []*models.CompetencyReport
	if err := store.Load(localstore.KeyCompetencyReports, &reports); err != nil {
		return err
	}
	for _, r := range reports {
		if err := database.CreateCompetencyReport(db, r); err != nil {
			return err
		}
	}
	if len(reports) > 0 {
		log.Printf("Imported %d competency reports", len(reports))
	}

	return nil
}
