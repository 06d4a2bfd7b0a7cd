package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"motortrack/internal/database"
	"motortrack/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "motortrack.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	// AutoMigrate to ensure schema is up to date
	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Company{},
		&domain.Motor{},
		&domain.Job{},
		&domain.Invoice{},
		&domain.Warranty{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM warranties")
	db.Exec("DELETE FROM invoices")
	db.Exec("DELETE FROM jobs")
	db.Exec("DELETE FROM motors")
	db.Exec("DELETE FROM companies")
	db.Exec("DELETE FROM users")

	now := time.Now()

	// ================== USERS ==================
	log.Println("Creating users...")

	admin := domain.User{
		Email:    "admin@motortrack.io",
		Name:     "Olga Petrova",
		Role:     domain.RoleAdmin,
		Phone:    "+1 555 010 0001",
		IsActive: true,
	}
	db.Create(&admin)

	technicians := []domain.User{}
	techNames := []string{"Marcus Webb", "Elena Vargas", "Tom Okafor"}
	for i, name := range techNames {
		tech := domain.User{
			Email:    fmt.Sprintf("tech%d@motortrack.io", i+1),
			Name:     name,
			Role:     domain.RoleTechnician,
			Phone:    fmt.Sprintf("+1 555 010 01%02d", i+1),
			IsActive: true,
		}
		db.Create(&tech)
		technicians = append(technicians, tech)
	}

	// ================== COMPANIES ==================
	log.Println("Creating companies...")

	companies := []domain.Company{
		{
			Name:         "Northside Paper Mill",
			ContactName:  "Dan Kowalski",
			Email:        "maintenance@northsidepaper.com",
			Phone:        "+1 555 020 0001",
			Address:      "1400 Mill Rd",
			PaymentTerms: 30,
			Status:       domain.CompanyActive,
		},
		{
			Name:         "Harbor Cold Storage",
			ContactName:  "Mei Lin",
			Email:        "ops@harborcold.com",
			Phone:        "+1 555 020 0002",
			Address:      "8 Pier Ave",
			PaymentTerms: 45,
			Status:       domain.CompanyActive,
		},
		{
			Name:         "Crestline Quarry",
			ContactName:  "Ray Donnelly",
			Email:        "ray@crestlinequarry.com",
			Phone:        "+1 555 020 0003",
			Address:      "Route 9, Crestline",
			PaymentTerms: 30,
			Status:       domain.CompanyPaymentDue,
		},
	}
	for i := range companies {
		db.Create(&companies[i])
	}

	// ================== MOTORS ==================
	log.Println("Creating motors...")

	motors := []domain.Motor{
		{
			CompanyID:    companies[0].ID,
			MotorID:      "NPM-PUMP-01",
			Manufacturer: "WEG",
			Model:        "W22 250HP",
			SerialNumber: "WG-2281934",
			Type:         domain.MotorAC,
			Voltage:      "460V",
			Power:        "250HP",
			Phase:        domain.PhaseThree,
			RPM:          "1780",
			Condition:    domain.ConditionGood,
			Location:     "Pulp line, bay 3",
		},
		{
			CompanyID:    companies[0].ID,
			MotorID:      "NPM-FAN-04",
			Manufacturer: "Baldor",
			Model:        "EM4400",
			SerialNumber: "BD-994412",
			Type:         domain.MotorAC,
			Voltage:      "460V",
			Power:        "100HP",
			Phase:        domain.PhaseThree,
			RPM:          "3560",
			Condition:    domain.ConditionFair,
			Location:     "Dryer exhaust",
		},
		{
			CompanyID:    companies[1].ID,
			MotorID:      "HCS-COMP-02",
			Manufacturer: "Siemens",
			Model:        "1LE1",
			SerialNumber: "SM-5501287",
			Type:         domain.MotorAC,
			Voltage:      "230V",
			Power:        "75HP",
			Phase:        domain.PhaseThree,
			Condition:    domain.ConditionExcellent,
			Location:     "Compressor room",
		},
		{
			CompanyID:    companies[2].ID,
			MotorID:      "CQ-CRUSH-01",
			Manufacturer: "TECO",
			Model:        "MAX-E2",
			SerialNumber: "TC-118845",
			Type:         domain.MotorDC,
			Voltage:      "500V",
			Power:        "400HP",
			Condition:    domain.ConditionPoor,
			Location:     "Primary crusher",
		},
	}
	for i := range motors {
		db.Create(&motors[i])
	}

	// ================== JOBS ==================
	log.Println("Creating jobs...")

	due1 := now.AddDate(0, 0, 10)
	due2 := now.AddDate(0, 0, -3)
	started := now.AddDate(0, 0, -14)
	completed := now.AddDate(0, 0, -20)

	jobs := []domain.Job{
		{
			JobNumber:          "J-2025-0141",
			CompanyID:          companies[0].ID,
			MotorID:            motors[0].ID,
			Description:        "Rewind stator, replace both bearings",
			Status:             domain.JobInProgress,
			Priority:           domain.PriorityHigh,
			EstimatedCost:      8400,
			LaborRate:          95,
			LaborHours:         22,
			StartDate:          &started,
			DueDate:            &due1,
			TechnicianID:       &technicians[0].ID,
			ProgressPercentage: domain.ProgressForStatus(domain.JobInProgress),
		},
		{
			JobNumber:          "J-2025-0142",
			CompanyID:          companies[1].ID,
			MotorID:            motors[2].ID,
			Description:        "Vibration analysis and realignment",
			Status:             domain.JobPending,
			Priority:           domain.PriorityNormal,
			EstimatedCost:      1200,
			LaborRate:          95,
			DueDate:            &due2,
			TechnicianID:       &technicians[1].ID,
			ProgressPercentage: domain.ProgressForStatus(domain.JobPending),
		},
		{
			JobNumber:          "J-2025-0137",
			CompanyID:          companies[2].ID,
			MotorID:            motors[3].ID,
			Description:        "Replace commutator, turn and undercut",
			Status:             domain.JobCompleted,
			Priority:           domain.PriorityUrgent,
			EstimatedCost:      15200,
			ActualCost:         14750,
			LaborRate:          110,
			LaborHours:         68,
			PartsCost:          6200,
			CompletedDate:      &completed,
			TechnicianID:       &technicians[2].ID,
			ProgressPercentage: domain.ProgressForStatus(domain.JobCompleted),
		},
	}
	for i := range jobs {
		db.Create(&jobs[i])
	}

	// Keep company counters in line with what was just created.
	for i := range companies {
		motorCount := 0
		for j := range motors {
			if motors[j].CompanyID == companies[i].ID {
				motorCount++
			}
		}
		activeJobs := 0
		for j := range jobs {
			if jobs[j].CompanyID == companies[i].ID && jobs[j].IsActive() {
				activeJobs++
			}
		}
		db.Model(&companies[i]).Updates(map[string]any{
			"motor_count": motorCount,
			"active_jobs": activeJobs,
		})
	}

	// ================== INVOICES ==================
	log.Println("Creating invoices...")

	paid := now.AddDate(0, 0, -12)
	invoices := []domain.Invoice{
		{
			InvoiceNumber: "INV-2025-0301",
			JobID:         jobs[2].ID,
			CompanyID:     companies[2].ID,
			Subtotal:      14750,
			TaxAmount:     1180,
			TotalAmount:   15930,
			Status:        domain.InvoicePaid,
			IssueDate:     now.AddDate(0, 0, -19),
			DueDate:       now.AddDate(0, 0, 11),
			PaidDate:      &paid,
			PaymentMethod: "wire",
			PaymentTerms:  30,
		},
		{
			InvoiceNumber: "INV-2025-0302",
			JobID:         jobs[0].ID,
			CompanyID:     companies[0].ID,
			Subtotal:      4200,
			TaxAmount:     336,
			TotalAmount:   4536,
			Status:        domain.InvoiceSent,
			IssueDate:     now.AddDate(0, 0, -5),
			DueDate:       now.AddDate(0, 0, 25),
			PaymentTerms:  30,
			Notes:         "Progress billing, 50% of estimate",
		},
	}
	for i := range invoices {
		db.Create(&invoices[i])
	}

	// ================== WARRANTIES ==================
	log.Println("Creating warranties...")

	warranty := domain.Warranty{
		JobID:           jobs[2].ID,
		CompanyID:       companies[2].ID,
		MotorID:         motors[3].ID,
		WorkDescription: "Commutator replacement and DC rebuild",
		WarrantyStart:   completed,
		WarrantyEnd:     completed.AddDate(0, 12, 0),
		WarrantyPeriod:  12,
		Status:          domain.WarrantyActive,
		ClaimStatus:     domain.ClaimNone,
	}
	db.Create(&warranty)

	log.Println("Seed complete.")
	log.Printf("  users: %d  companies: %d  motors: %d  jobs: %d  invoices: %d  warranties: 1",
		len(technicians)+1, len(companies), len(motors), len(jobs), len(invoices))
}
