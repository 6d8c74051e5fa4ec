package config

import (
	"log"
	"os"

	"github.com/vnkhanh/food-adda-backend/store"
)

var Store *store.Store

// InitStore mở thư mục dữ liệu (DATA_DIR, mặc định ./data) và seed
// dữ liệu mặc định cho lần chạy đầu tiên.
func InitStore() {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}

	Store = store.Open(dir)

	if err := SeedDefaultData(Store); err != nil {
		log.Fatal("Không seed được dữ liệu mặc định: ", err)
	}

	log.Println("File store sẵn sàng tại:", dir)
}
