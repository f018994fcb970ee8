// Package catalog holds the built-in product catalog used as a fallback
// and enrichment source when live scraping is slow or unavailable.
package catalog

import (
	"fmt"

	"github.com/techadvisor/backend/internal/domain"
)

// Store is an in-memory, read-only catalog. Entries are curated per
// category across the common budget brackets so every price band has at
// least one offline answer.
type Store struct {
	items []domain.Candidate
}

// NewStore returns a Store backed by the built-in product list.
func NewStore() *Store {
	return &Store{items: builtinProducts()}
}

// All returns a copy of every catalog entry.
func (s *Store) All() []domain.Candidate {
	out := make([]domain.Candidate, len(s.items))
	copy(out, s.items)
	return out
}

// ByCategory returns copies of the entries in the given category.
// An unknown category yields an empty slice, not an error.
func (s *Store) ByCategory(category string) []domain.Candidate {
	var out []domain.Candidate
	for _, item := range s.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func entry(id int, category, name, brand string, price int, url string, specs map[string]string) domain.Candidate {
	return domain.Candidate{
		ID:       fmt.Sprintf("local::%d", id),
		Category: category,
		Name:     name,
		Brand:    brand,
		Price:    price,
		Specs:    specs,
		Source:   domain.SourceLocalDatabase,
		URL:      url,
	}
}

func builtinProducts() []domain.Candidate {
	return []domain.Candidate{
		// Telefonlar, 10k-30k
		entry(101, domain.CategoryPhone, "Samsung Galaxy A54 128 GB", "Samsung", 12500,
			"https://www.hepsiburada.com/samsung-galaxy-a54-128-gb-samsung-turkiye-garantili-p-HBCV00003Z7Y2X",
			map[string]string{"Ekran": "6.4 inç Super AMOLED", "Kamera": "50MP", "CPU": "Exynos 1380", "Depolama": "128GB", "RAM": "8GB", "Batarya": "5000 mAh"}),
		entry(102, domain.CategoryPhone, "Xiaomi Redmi Note 12 Pro 256 GB", "Xiaomi", 11800,
			"https://www.trendyol.com/xiaomi/redmi-note-12-pro-256-gb-8-gb-ram-mavi-cep-telefonu-ithalatci-garantili-p-701330925",
			map[string]string{"Ekran": "6.67 inç AMOLED", "Kamera": "108MP", "CPU": "MediaTek Dimensity 1080", "Depolama": "256GB", "RAM": "8GB", "Batarya": "5000 mAh"}),
		entry(103, domain.CategoryPhone, "Google Pixel 6a 128 GB", "Google", 15900,
			"https://www.amazon.com.tr/Google-Pixel-6a-128GB-Obsidian/dp/B0B3PSR3D8",
			map[string]string{"Ekran": "6.1 inç OLED", "Kamera": "12.2MP", "CPU": "Google Tensor", "Depolama": "128GB", "RAM": "6GB", "Batarya": "4410 mAh"}),
		entry(105, domain.CategoryPhone, "Oppo Reno 8 Pro 256 GB", "Oppo", 24500,
			"https://www.vatanbilgisayar.com/oppo-reno-8-pro-256-gb-akilli-telefon-siyah.html",
			map[string]string{"Ekran": "6.7 inç AMOLED", "Kamera": "50MP", "CPU": "Dimensity 8100-Max", "Depolama": "256GB", "RAM": "8GB", "Batarya": "4500 mAh"}),
		entry(130, domain.CategoryPhone, "Honor 90 512 GB", "Honor", 23000,
			"https://www.hepsiburada.com/honor-90-512-gb-12-gb-ram-honor-turkiye-garantili-p-HBCV00004PML8U",
			map[string]string{"Ekran": "6.7 inç AMOLED", "Kamera": "200MP", "CPU": "Snapdragon 7 Gen 1", "Depolama": "512GB", "RAM": "12GB", "Batarya": "5000 mAh"}),
		entry(132, domain.CategoryPhone, "Realme GT Master Edition 256 GB", "Realme", 13500,
			"https://www.trendyol.com/realme/gt-master-edition-256-gb-8-gb-ram-siyah-cep-telefonu-realme-turkiye-garantili-p-142835583",
			map[string]string{"Ekran": "6.43 inç Super AMOLED", "Kamera": "64MP", "CPU": "Snapdragon 778G 5G", "Depolama": "256GB", "RAM": "8GB", "Batarya": "4300 mAh"}),
		entry(133, domain.CategoryPhone, "Poco X5 Pro 5G 256 GB", "Xiaomi", 14200,
			"https://www.hepsiburada.com/poco-x5-pro-5g-256-gb-8-gb-ram-poco-turkiye-garantili-p-HBCV00003Z7Y2X",
			map[string]string{"Ekran": "6.67 inç AMOLED", "Kamera": "108MP", "CPU": "Snapdragon 778G 5G", "Depolama": "256GB", "RAM": "8GB", "Batarya": "5000 mAh"}),

		// Telefonlar, 30k-60k
		entry(112, domain.CategoryPhone, "Samsung Galaxy S23 128 GB", "Samsung", 31000,
			"https://www.trendyol.com/samsung/galaxy-s23-5g-128-gb-akilli-telefon-siyah-sm-s911bzkdtur-p-765879714",
			map[string]string{"Ekran": "6.1 inç Dynamic AMOLED 2X", "Kamera": "50MP", "CPU": "Snapdragon 8 Gen 2", "Depolama": "128GB", "RAM": "8GB", "Batarya": "3900 mAh"}),
		entry(113, domain.CategoryPhone, "Xiaomi 13T Pro 512 GB", "Xiaomi", 34000,
			"https://www.vatanbilgisayar.com/xiaomi-13t-pro-512-gb-akilli-telefon-siyah.html",
			map[string]string{"Ekran": "6.67 inç AMOLED", "Kamera": "50MP Leica", "CPU": "Dimensity 9200+", "Depolama": "512GB", "RAM": "12GB", "Batarya": "5000 mAh"}),
		entry(114, domain.CategoryPhone, "Google Pixel 7 Pro 128 GB", "Google", 30500,
			"https://www.amazon.com.tr/Google-Pixel-Pro-128GB-Obsidian/dp/B0BCQ4V44D",
			map[string]string{"Ekran": "6.7 inç LTPO AMOLED", "Kamera": "50MP", "CPU": "Google Tensor G2", "Depolama": "128GB", "RAM": "12GB", "Batarya": "5000 mAh"}),
		entry(119, domain.CategoryPhone, "Samsung Galaxy Z Flip5 256 GB", "Samsung", 43000,
			"https://www.hepsiburada.com/samsung-galaxy-z-flip5-256-gb-samsung-turkiye-garantili-p-HBCV00004PML8U",
			map[string]string{"Ekran": "6.7 inç Katlanabilir Dynamic AMOLED", "Kamera": "12MP", "CPU": "Snapdragon 8 Gen 2", "Depolama": "256GB", "RAM": "8GB", "Batarya": "3700 mAh"}),
		entry(120, domain.CategoryPhone, "Xiaomi 14 512 GB", "Xiaomi", 55000,
			"https://www.vatanbilgisayar.com/xiaomi-14-512-gb-akilli-telefon-siyah.html",
			map[string]string{"Ekran": "6.36 inç AMOLED", "Kamera": "50MP", "CPU": "Snapdragon 8 Gen 3", "Depolama": "512GB", "RAM": "12GB", "Batarya": "4610 mAh"}),
		entry(129, domain.CategoryPhone, "iPhone 15 128 GB", "Apple", 53999,
			"https://www.hepsiburada.com/apple-iphone-15-128-gb-p-HBCV0000529W2V",
			map[string]string{"Ekran": "6.1 inç Super Retina XDR", "Kamera": "48MP", "CPU": "A16 Bionic", "Depolama": "128GB", "Batarya": "3349 mAh"}),
		entry(134, domain.CategoryPhone, "OnePlus 11 256 GB", "OnePlus", 41000,
			"https://www.trendyol.com/oneplus/11-5g-256-gb-16-gb-ram-siyah-cep-telefonu-ithalatci-garantili-p-746289017",
			map[string]string{"Ekran": "6.7 inç Fluid AMOLED", "Kamera": "50MP", "CPU": "Snapdragon 8 Gen 2", "Depolama": "256GB", "RAM": "16GB", "Batarya": "5000 mAh"}),
		entry(135, domain.CategoryPhone, "Asus Zenfone 10 256 GB", "Asus", 38500,
			"https://www.hepsiburada.com/asus-zenfone-10-256-gb-8-gb-ram-asus-turkiye-garantili-p-HBCV00004PML8U",
			map[string]string{"Ekran": "5.92 inç AMOLED", "Kamera": "50MP", "CPU": "Snapdragon 8 Gen 2", "Depolama": "256GB", "RAM": "8GB", "Batarya": "4300 mAh"}),

		// Telefonlar, 60k-90k
		entry(122, domain.CategoryPhone, "Samsung Galaxy S24 Ultra 512 GB", "Samsung", 72500,
			"https://www.trendyol.com/samsung/galaxy-s24-ultra-512-gb-12-gb-ram-akilli-telefon-titanyum-siyah-p-87654321",
			map[string]string{"Ekran": "6.8 inç Dynamic AMOLED 2X", "Kamera": "200MP", "CPU": "Snapdragon 8 Gen 3", "Depolama": "512GB", "RAM": "12GB", "Batarya": "5000 mAh"}),
		entry(124, domain.CategoryPhone, "Samsung Galaxy Z Fold5 512 GB", "Samsung", 82000,
			"https://www.mediamarkt.com.tr/tr/product/_samsung-galaxy-z-fold5-512-gb-akilli-telefon-siyah-1229333.html",
			map[string]string{"Ekran": "7.6 inç Katlanabilir Dynamic AMOLED", "Kamera": "50MP", "CPU": "Snapdragon 8 Gen 2", "Depolama": "512GB", "RAM": "12GB", "Batarya": "4400 mAh"}),
		entry(121, domain.CategoryPhone, "iPhone 15 Pro Max 256 GB", "Apple", 86500,
			"https://www.hepsiburada.com/apple-iphone-15-pro-max-256-gb-p-HBCV0000529W2Z",
			map[string]string{"Ekran": "6.7 inç Super Retina XDR", "Kamera": "48MP", "CPU": "A17 Pro", "Depolama": "256GB", "Batarya": "4422 mAh"}),
		entry(136, domain.CategoryPhone, "Google Pixel 8 Pro 256 GB", "Google", 61000,
			"https://www.amazon.com.tr/Google-Pixel-Pro-256GB-Obsidian/dp/B0CGJ55G5J",
			map[string]string{"Ekran": "6.7 inç LTPO OLED", "Kamera": "50MP", "CPU": "Google Tensor G3", "Depolama": "256GB", "RAM": "12GB", "Batarya": "5050 mAh"}),

		// Telefonlar, 90k+
		entry(125, domain.CategoryPhone, "Huawei Mate 60 Pro+ 1TB", "Huawei", 95000,
			"https://www.n11.com/urun/huawei-mate-60-pro-plus-1-tb-16-gb-ram-huawei-turkiye-garantili-2345678",
			map[string]string{"Ekran": "6.82 inç LTPO OLED", "Kamera": "48MP", "CPU": "Kirin 9000S", "Depolama": "1TB", "RAM": "16GB", "Batarya": "5000 mAh"}),
		entry(131, domain.CategoryPhone, "iPhone 15 Pro Max 1TB", "Apple", 105000,
			"https://www.vatanbilgisayar.com/apple-iphone-15-pro-max-1tb-akilli-telefon-naturel-titanyum.html",
			map[string]string{"Ekran": "6.7 inç Super Retina XDR", "Kamera": "48MP", "CPU": "A17 Pro", "Depolama": "1TB", "Batarya": "4422 mAh"}),
		entry(137, domain.CategoryPhone, "Samsung Galaxy S24 Ultra 1TB", "Samsung", 92000,
			"https://www.hepsiburada.com/samsung-galaxy-s24-ultra-1-tb-12-gb-ram-samsung-turkiye-garantili-p-HBCV00005Y3Z1X",
			map[string]string{"Ekran": "6.8 inç Dynamic AMOLED 2X", "Kamera": "200MP", "CPU": "Snapdragon 8 Gen 3", "Depolama": "1TB", "RAM": "12GB", "Batarya": "5000 mAh"}),

		// Laptoplar, 10k-30k
		entry(201, domain.CategoryLaptop, "HP Victus Gaming 15 (FA0008NT)", "HP", 22000,
			"https://www.hepsiburada.com/hp-victus-gaming-15-fa0008nt-intel-core-i5-12500h-16gb-512gb-ssd-rtx3050-freedos-15-6-fhd-144hz-tasinabilir-bilgisayar-6g0n9ea-p-HBCV00002S3V5J",
			map[string]string{"Ekran": "15.6 inç FHD 144Hz", "CPU": "Intel i5-12500H", "GPU": "NVIDIA GeForce RTX 3050", "RAM": "16GB", "Depolama": "512GB SSD"}),
		entry(203, domain.CategoryLaptop, "Lenovo Ideapad Gaming 3 (82K200K0TX)", "Lenovo", 29500,
			"https://www.vatanbilgisayar.com/lenovo-ideapad-gaming-3-amd-ryzen-7-5800h-3-2ghz-16gb-512gb-ssd-15-6-rtx3060-6gb-w11.html",
			map[string]string{"Ekran": "15.6 inç FHD 120Hz", "CPU": "Intel i7-12700H", "GPU": "NVIDIA GeForce RTX 3060", "RAM": "16GB", "Depolama": "512GB SSD"}),
		entry(205, domain.CategoryLaptop, "MSI Katana GF66 (12UC-605XTR)", "MSI", 27000,
			"https://www.trendyol.com/msi/katana-gf66-12uc-605xtr-intel-core-i7-12700h-16gb-512gb-ssd-rtx3050-freedos-15-6-fhd-144hz-p-43219876",
			map[string]string{"Ekran": "15.6 inç FHD 144Hz", "CPU": "Intel i7-12700H", "GPU": "NVIDIA GeForce RTX 3050 Ti", "RAM": "16GB", "Depolama": "512GB SSD"}),
		entry(209, domain.CategoryLaptop, "Huawei Matebook D 16 2024", "Huawei", 19500,
			"https://www.mediamarkt.com.tr/tr/product/_huawei-matebook-d-16-2024-intel-core-i5-12450h-8gb-ram-512gb-ssd-windows-11-home-16-inc-laptop-uzay-grisi-1234567.html",
			map[string]string{"Ekran": "16 inç FHD IPS", "CPU": "Intel i5-12450H", "GPU": "Intel UHD Graphics", "RAM": "8GB", "Depolama": "512GB SSD"}),
		entry(226, domain.CategoryLaptop, "Acer Aspire 3 A315-58", "Acer", 11500,
			"https://www.hepsiburada.com/acer-aspire-3-a315-58-intel-core-i3-1115g4-8gb-256gb-ssd-windows-11-home-15-6-fhd-tasinabilir-bilgisayar-nx-addey-00j-p-HBCV00003Z7Y2X",
			map[string]string{"Ekran": "15.6 inç FHD", "CPU": "Intel Core i3-1115G4", "GPU": "Intel UHD Graphics", "RAM": "8GB", "Depolama": "256GB SSD"}),
		entry(227, domain.CategoryLaptop, "Casper Excalibur G770", "Casper", 26500,
			"https://www.trendyol.com/casper/excalibur-g770-1245-bvh0x-b-intel-core-i5-12450h-16-gb-500-gb-ssd-rtx-3050-ti-4-gb-15-6-p-34567890",
			map[string]string{"Ekran": "15.6 inç FHD 144Hz", "CPU": "Intel i5-12450H", "GPU": "NVIDIA GeForce RTX 3050 Ti", "RAM": "16GB", "Depolama": "500GB SSD"}),

		// Laptoplar, 30k-60k
		entry(211, domain.CategoryLaptop, "Lenovo Legion Pro 5", "Lenovo", 48500,
			"https://www.hepsiburada.com/lenovo-legion-pro-5-amd-ryzen-7-7745hx-16gb-1tb-ssd-rtx4070-freedos-16-wqxga-165hz-tasinabilir-bilgisayar-82wm006qtx-p-HBCV00004F7Z1Y",
			map[string]string{"Ekran": "16 inç WQXGA 165Hz", "CPU": "Ryzen 7 7745HX", "GPU": "NVIDIA GeForce RTX 4070", "RAM": "16GB", "Depolama": "1TB SSD"}),
		entry(215, domain.CategoryLaptop, "Asus ROG Zephyrus G14 (GA402NJ)", "Asus", 37000,
			"https://www.vatanbilgisayar.com/asus-rog-zephyrus-g14-ryzen-9-7940hs-3-2ghz-16gb-1tb-ssd-14-rtx4060-8gb-w11.html",
			map[string]string{"Ekran": "14 inç QHD+ 165Hz", "CPU": "Ryzen 9 7940HS", "GPU": "NVIDIA GeForce RTX 4060", "RAM": "16GB", "Depolama": "1TB SSD"}),
		entry(216, domain.CategoryLaptop, "HP Omen 16 (WF0011NT)", "HP", 39000,
			"https://www.trendyol.com/hp/omen-16-wf0011nt-intel-core-i7-13700h-16gb-512gb-ssd-rtx4060-freedos-16-1-fhd-165hz-p-87654321",
			map[string]string{"Ekran": "16.1 inç FHD 165Hz", "CPU": "Intel i7-13700H", "GPU": "NVIDIA GeForce RTX 4060", "RAM": "16GB", "Depolama": "512GB SSD"}),
		entry(219, domain.CategoryLaptop, "MacBook Air 15 inç M3", "Apple", 53000,
			"https://www.hepsiburada.com/apple-macbook-air-15-3-inc-m3-cip-8gb-256gb-ssd-gece-yarisi-mryp3tu-a-p-HBCV00005Y3Z1X",
			map[string]string{"Ekran": "15.3 inç Liquid Retina", "CPU": "Apple M3", "GPU": "Apple M3 10 Çekirdekli", "RAM": "8GB", "Depolama": "256GB SSD"}),
		entry(220, domain.CategoryLaptop, "Asus Zenbook Duo OLED (UX8406)", "Asus", 58000,
			"https://www.vatanbilgisayar.com/asus-zenbook-duo-ux8406ma-core-ultra-9-185h-2-30ghz-32gb-2tb-ssd-14-oled-w11.html",
			map[string]string{"Ekran": "14 inç Çift OLED", "CPU": "Intel Core Ultra 9 185H", "GPU": "Intel Arc Graphics", "RAM": "32GB", "Depolama": "2TB SSD"}),
		entry(228, domain.CategoryLaptop, "Monster Tulpar T7 V21.14.3", "Monster", 45500,
			"https://www.monsternotebook.com.tr/tulpar/monster-tulpar-t7-v21-14-3/",
			map[string]string{"Ekran": "17.3 inç QHD 165Hz", "CPU": "Intel Core i7-13700H", "GPU": "NVIDIA GeForce RTX 4060", "RAM": "32GB", "Depolama": "1TB SSD"}),

		// Laptoplar, 60k-90k
		entry(212, domain.CategoryLaptop, "Asus ROG Strix Scar 16 (G634JZR)", "Asus", 82000,
			"https://www.hepsiburada.com/asus-rog-strix-scar-16-g634jzr-intel-core-i9-13980hx-32gb-1tb-ssd-rtx4080-windows-11-home-16-qhd-240hz-tasinabilir-bilgisayar-p-HBCV00003Z1Y2X",
			map[string]string{"Ekran": "16 inç QHD+ 240Hz", "CPU": "Intel i9-13980HX", "GPU": "NVIDIA GeForce RTX 4080", "RAM": "32GB", "Depolama": "1TB SSD"}),
		entry(222, domain.CategoryLaptop, "Asus ROG Zephyrus Duo 16 (GX650PZ)", "Asus", 75000,
			"https://www.vatanbilgisayar.com/asus-rog-zephyrus-duo-16-ryzen-9-7945hx-32gb-1tb-ssd-16-rtx4080-12gb-w11.html",
			map[string]string{"Ekran": "16 inç Çift Ekran Mini LED", "CPU": "Ryzen 9 7945HX", "GPU": "NVIDIA GeForce RTX 4080", "RAM": "32GB", "Depolama": "1TB SSD"}),
		entry(225, domain.CategoryLaptop, "Razer Blade 16", "Razer", 80000,
			"https://www.trendyol.com/razer/blade-16-intel-core-i9-13950hx-32gb-1tb-ssd-rtx4070-windows-11-home-16-qhd-240hz-p-12345678",
			map[string]string{"Ekran": "16 inç Mini-LED QHD+ 240Hz", "CPU": "Intel i9-13950HX", "GPU": "NVIDIA GeForce RTX 4070", "RAM": "32GB", "Depolama": "1TB SSD"}),
		entry(229, domain.CategoryLaptop, "MacBook Pro 14 inç M3 Pro", "Apple", 78000,
			"https://www.hepsiburada.com/apple-macbook-pro-14-inc-m3-pro-cip-18gb-512gb-ssd-uzay-siyahi-mrx33tu-a-p-HBCV00005Y3Z1Y",
			map[string]string{"Ekran": "14.2 inç Liquid Retina XDR", "CPU": "Apple M3 Pro", "GPU": "Apple M3 Pro 14 Çekirdekli", "RAM": "18GB", "Depolama": "512GB SSD"}),

		// Laptoplar, 90k+
		entry(221, domain.CategoryLaptop, "MSI Titan GT77 HX 13VI", "MSI", 108000,
			"https://www.hepsiburada.com/msi-titan-gt77-hx-13vi-intel-core-i9-13980hx-64gb-4tb-ssd-rtx4090-17-3-uhd-144hz-windows-11-pro-tasinabilir-bilgisayar-p-HBCV00003Z1Y2X",
			map[string]string{"Ekran": "17.3 inç UHD 144Hz", "CPU": "Intel i9-13980HX", "GPU": "NVIDIA GeForce RTX 4090", "RAM": "64GB", "Depolama": "4TB SSD"}),
		entry(223, domain.CategoryLaptop, "MacBook Pro 16 inç M3 Max", "Apple", 95000,
			"https://www.mediamarkt.com.tr/tr/product/_macbook-pro-16-m3-max-36gb-1tb-ssd-uzay-siyahı-mrw43tu-a-1229333.html",
			map[string]string{"Ekran": "16 inç Liquid Retina XDR", "CPU": "Apple M3 Max", "GPU": "Apple M3 Max 30 Çekirdekli", "RAM": "36GB", "Depolama": "1TB SSD"}),
		entry(230, domain.CategoryLaptop, "Asus ROG Strix SCAR 18 (G834JY)", "Asus", 125000,
			"https://www.vatanbilgisayar.com/asus-rog-strix-scar-18-13-nesil-core-i9-13980hx-rtx4090-16gb-32gb-2tb-ssd-18-w11.html",
			map[string]string{"Ekran": "18 inç QHD+ 240Hz", "CPU": "Intel Core i9-13980HX", "GPU": "NVIDIA GeForce RTX 4090", "RAM": "32GB", "Depolama": "2TB SSD"}),

		// Masaüstü hazır sistemler, 10k-30k
		entry(301, domain.CategoryDesktop, "Sinerji Diamond Oyuncu Bilgisayarı", "Sinerji", 18500,
			"https://www.sinerji.gen.tr/sinerji-diamond-ryzen-5-5600-16gb-512gb-nvme-m2-ssd-rtx3050-oyun-bilgisayari-p-41334",
			map[string]string{"CPU": "AMD Ryzen 5 5600", "GPU": "NVIDIA GeForce RTX 3050", "RAM": "16GB DDR4", "Depolama": "512GB SSD"}),
		entry(302, domain.CategoryDesktop, "Vatan Bilgisayar INTEL 12100F-RTX3060", "Vatan Bilgisayar", 24000,
			"https://www.vatanbilgisayar.com/intel-12100f-asus-dual-rtx3060-o12g-v2-asus-prime-h610m-k-d4-16gb-ram-500gb-m-2-ssd.html",
			map[string]string{"CPU": "Intel Core i3-12100F", "GPU": "NVIDIA GeForce RTX 3060", "RAM": "16GB DDR4", "Depolama": "500GB SSD"}),
		entry(303, domain.CategoryDesktop, "ITOPYA Kratos 3A-4060", "Itopya", 29500,
			"https://www.itopya.com/kratos-3a-4060-amd-ryzen-5-7500f-asus-dual-geforce-rtx-4060-oc-8gb-16gb-ddr5-512gb-nvme-m2-ssd-gaming-pc_h2345",
			map[string]string{"CPU": "AMD Ryzen 5 7500F", "GPU": "NVIDIA GeForce RTX 4060", "RAM": "16GB DDR5", "Depolama": "512GB SSD"}),
		entry(316, domain.CategoryDesktop, "Gaming.gen.tr GHOST 5A-3050", "Gaming.gen.tr", 16000,
			"https://www.gaming.gen.tr/urun/223190/ghost-5a-3050-amd-ryzen-5-5500-asus-geforce-rtx-3050-dual-8gb-16gb-ram-500gb-m-2-ssd-gaming-bilgisayar/",
			map[string]string{"CPU": "AMD Ryzen 5 5500", "GPU": "NVIDIA GeForce RTX 3050", "RAM": "16GB DDR4", "Depolama": "500GB SSD"}),

		// Masaüstü hazır sistemler, 30k-60k
		entry(306, domain.CategoryDesktop, "Sinerji Calypso Oyuncu Bilgisayarı", "Sinerji", 42000,
			"https://www.sinerji.gen.tr/sinerji-calypso-ryzen-7-7700-32gb-1tb-nvme-m2-ssd-rtx4070-oyun-bilgisayari-p-41334",
			map[string]string{"CPU": "AMD Ryzen 7 7700", "GPU": "NVIDIA GeForce RTX 4070", "RAM": "32GB DDR5", "Depolama": "1TB SSD"}),
		entry(307, domain.CategoryDesktop, "Itopya APEX 5A-4070", "Itopya", 38000,
			"https://www.itopya.com/apex-5a-4070-amd-ryzen-5-7600-gigabyte-geforce-rtx-4070-gaming-oc-12gb-16gb-ddr5-1tb-nvme-m2-ssd-gaming-pc_h2345",
			map[string]string{"CPU": "AMD Ryzen 5 7600", "GPU": "NVIDIA GeForce RTX 4070", "RAM": "16GB DDR5", "Depolama": "1TB SSD"}),
		entry(317, domain.CategoryDesktop, "Vatan Bilgisayar INTEL I5-13400F-RTX4060TI", "Vatan Bilgisayar", 35500,
			"https://www.vatanbilgisayar.com/intel-i5-13400f-asus-dual-rtx4060ti-o8g-asus-prime-b760m-k-d4-16gb-ram-1tb-m-2-ssd.html",
			map[string]string{"CPU": "Intel Core i5-13400F", "GPU": "NVIDIA GeForce RTX 4060 Ti", "RAM": "16GB DDR4", "Depolama": "1TB SSD"}),
		entry(318, domain.CategoryDesktop, "Gaming.gen.tr MITHRANDIR 7A-4070S", "Gaming.gen.tr", 51000,
			"https://www.gaming.gen.tr/urun/478311/mithrandir-7a-4070-super-amd-ryzen-7-7800x3d-asus-tuf-gaming-geforce-rtx-4070-super-12gb-oc-16gb-ram-1tb-m-2-ssd-gaming-bilgisayar/",
			map[string]string{"CPU": "AMD Ryzen 7 7800X3D", "GPU": "NVIDIA GeForce RTX 4070 Super", "RAM": "16GB DDR5", "Depolama": "1TB SSD"}),

		// Masaüstü hazır sistemler, 60k-90k
		entry(312, domain.CategoryDesktop, "Sinerji Deimos Oyuncu Bilgisayarı", "Sinerji", 65000,
			"https://www.sinerji.gen.tr/sinerji-deimos-intel-core-i7-14700kf-32gb-2tb-nvme-m2-ssd-rtx4080-oyun-bilgisayari-p-51234",
			map[string]string{"CPU": "Intel Core i7-14700KF", "GPU": "NVIDIA GeForce RTX 4080", "RAM": "32GB DDR5", "Depolama": "2TB SSD"}),
		entry(314, domain.CategoryDesktop, "Itopya BIFROST 7A-4080S", "Itopya", 72000,
			"https://www.itopya.com/bifrost-7a-4080s-amd-ryzen-7-7800x3d-msi-geforce-rtx-4080-super-16g-gaming-x-slim-32gb-ddr5-1tb-nvme-m2-ssd-gaming-pc_h2345",
			map[string]string{"CPU": "AMD Ryzen 7 7800X3D", "GPU": "NVIDIA GeForce RTX 4080 Super", "RAM": "32GB DDR5", "Depolama": "1TB SSD"}),
		entry(319, domain.CategoryDesktop, "Gaming.gen.tr THOR 9A-4070TIS", "Gaming.gen.tr", 85000,
			"https://www.gaming.gen.tr/urun/506699/thor-9a-4070-ti-super-amd-ryzen-9-7900x-asus-proart-geforce-rtx-4070-ti-super-16gb-oc-32gb-ram-2tb-m-2-ssd-gaming-bilgisayar/",
			map[string]string{"CPU": "AMD Ryzen 9 7900X", "GPU": "NVIDIA GeForce RTX 4070 Ti Super", "RAM": "32GB DDR5", "Depolama": "2TB SSD"}),

		// Masaüstü hazır sistemler, 90k+
		entry(311, domain.CategoryDesktop, "Itopya ULTIMA 9A-4090", "Itopya", 105000,
			"https://www.itopya.com/ultima-9a-4090-amd-ryzen-9-7950x3d-msi-geforce-rtx-4090-gaming-x-trio-24gb-32gb-ddr5-2tb-nvme-m2-ssd-gaming-pc_h2345",
			map[string]string{"CPU": "AMD Ryzen 9 7950X3D", "GPU": "NVIDIA GeForce RTX 4090", "RAM": "32GB DDR5", "Depolama": "2TB SSD"}),
		entry(313, domain.CategoryDesktop, "Sinerji Prometheus Oyuncu Bilgisayarı", "Sinerji", 120000,
			"https://www.sinerji.gen.tr/sinerji-prometheus-intel-core-i9-14900kf-64gb-4tb-nvme-m2-ssd-rtx4090-oyun-bilgisayari-p-51234",
			map[string]string{"CPU": "Intel Core i9-14900KF", "GPU": "NVIDIA GeForce RTX 4090", "RAM": "64GB DDR5", "Depolama": "4TB SSD"}),
		entry(320, domain.CategoryDesktop, "Vatan Bilgisayar INTEL I9-14900K-RTX4090", "Vatan Bilgisayar", 135000,
			"https://www.vatanbilgisayar.com/intel-i9-14900k-asus-rog-strix-rtx4090-o24g-gaming-asus-rog-strix-z790-f-gaming-wifi-64gb.html",
			map[string]string{"CPU": "Intel Core i9-14900K", "GPU": "NVIDIA GeForce RTX 4090", "RAM": "64GB DDR5", "Depolama": "4TB SSD"}),
	}
}
