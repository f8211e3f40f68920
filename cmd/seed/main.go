package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"coachhub/internal/config"
	"coachhub/internal/db"
	"coachhub/internal/model"
)

// Baseline catalog rows inserted idempotently. Re-running the seed leaves
// existing rows untouched.
var defaultSkills = []string{
	"重訓",
	"瑜伽",
	"有氧運動",
	"復健訓練",
}

type seedPackage struct {
	name         string
	creditAmount int
	price        string
}

var defaultPackages = []seedPackage{
	{name: "7 堂組合包方案", creditAmount: 7, price: "1400"},
	{name: "14 堂組合包方案", creditAmount: 14, price: "2520"},
	{name: "21 堂組合包方案", creditAmount: 21, price: "4800"},
}

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, continuing with environment")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Skill{}, &model.CreditPackage{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	if err := seedSkills(gormDB); err != nil {
		log.Fatalf("Failed to seed skills: %v", err)
	}
	if err := seedPackages(gormDB); err != nil {
		log.Fatalf("Failed to seed credit packages: %v", err)
	}

	log.Println("Seed completed")
}

func seedSkills(gormDB *gorm.DB) error {
	for _, name := range defaultSkills {
		skill := model.Skill{Name: name}
		if err := gormDB.Where("name = ?", name).FirstOrCreate(&skill).Error; err != nil {
			return err
		}
		log.Printf("Skill ready: %s (%s)", skill.Name, skill.ID)
	}
	return nil
}

func seedPackages(gormDB *gorm.DB) error {
	for _, p := range defaultPackages {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			return err
		}
		pkg := model.CreditPackage{
			Name:         p.name,
			CreditAmount: p.creditAmount,
			Price:        price,
		}
		if err := gormDB.Where("name = ?", p.name).FirstOrCreate(&pkg).Error; err != nil {
			return err
		}
		log.Printf("Credit package ready: %s (%s)", pkg.Name, pkg.ID)
	}
	return nil
}
