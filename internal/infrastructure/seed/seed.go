package seed

import "github.com/yourusername/laptop-storefront/internal/domain/entity"

// Products jadval yuklanmaganda ham ko'rsatiladigan boshlang'ich katalog
func Products() []entity.Product {
	return []entity.Product{
		{
			ID:            "dell-lat-5310",
			Name:          "Laptop Dell Latitude 5310 I5-10310U/16GB/512GB SSD/13.3 inch FHD",
			Price:         "6.590.000₫",
			OriginalPrice: "7.500.000₫",
			Description: `Cam kết 100% hài lòng
Quý khách hàng vui lòng NHẮN TIN cho Shop để được tư vấn và xem ảnh sản phẩm thực tế (Nếu cần)

DELL LATITUDE 5310
PHẦN MỀM TƯƠNG THÍCH:
- Ứng dụng văn phòng: Word, Excel, PowerPoint, Foxit PDF Reader, Zoom
- Thiết kế đồ họa: Photoshop cc, Ai, Canva
- Game: CF, LOL, GTA, Minecraft, Roblox,...

CHÍNH SÁCH BẢO HÀNH:
- BẢO HÀNH 12 THÁNG PHẦN CỨNG
- MÀN HÌNH + PIN + PHỤ KIỆN bảo hành 3 tháng
- Hỗ trợ 1 đổi 1 trong vòng 15 ngày nếu lỗi`,
			Specs: []string{
				"CPU: Intel Core i5-10310U (4 nhân 8 luồng)",
				"RAM: 16GB DDR4 2667MHz",
				"SSD: 512GB Nvme",
				`Màn hình: 13.3" LED WVA Full HD chống chói`,
				"VGA: Intel HD Graphics 620",
				"Trọng lượng: 1.19kg",
				"Pin: >4h tác vụ cơ bản",
				"Cổng: USB 3.2, USB-C, HDMI, RJ45",
			},
			Images: []string{
				"https://i.postimg.cc/43tcmZmX/anh1.webp",
				"https://i.postimg.cc/hGxmfgft/anh4.webp",
			},
			AffiliateLink: "https://shopee.vn/Laptop-Dell-Latitude-5310-I5-10310U-16GB-512GB-SSD-13.3-inch-FHD-i.158294751.28981418547",
			Category:      "Gaming",
			Brand:         "Dell",
		},
		{
			ID:            "1",
			Name:          "MacBook Air M2",
			Price:         "26.990.000₫",
			OriginalPrice: "32.990.000₫",
			Description:   "Siêu phẩm MacBook Air M2 thiết kế hoàn toàn mới, hiệu năng vượt trội với chip M2. Màn hình Liquid Retina tuyệt đẹp.",
			Specs:         []string{"Chip M2", "8GB RAM", "256GB SSD", "13.6 inch Liquid Retina"},
			Images: []string{
				"https://images.unsplash.com/photo-1611186871348-640e0479dcd1?auto=format&fit=crop&q=80&w=1000",
				"https://images.unsplash.com/photo-1580522154071-c6ca47a859ad?auto=format&fit=crop&q=80&w=1000",
				"https://images.unsplash.com/photo-1541807084-5c52b6b3adef?auto=format&fit=crop&q=80&w=1000",
			},
			AffiliateLink: "#",
			Category:      "Ultrabook",
			Brand:         "Apple",
		},
		{
			ID:            "2",
			Name:          "Dell XPS 13 Plus",
			Price:         "45.000.000₫",
			OriginalPrice: "49.990.000₫",
			Description:   "Thiết kế tương lai, bàn phím tràn viền, hiệu năng mạnh mẽ cho doanh nhân.",
			Specs:         []string{"Core i7 1260P", "16GB RAM", "512GB SSD", "13.4 inch OLED 3.5K"},
			Images: []string{
				"https://images.unsplash.com/photo-1593642632823-8f78536788c6?auto=format&fit=crop&q=80&w=1000",
				"https://images.unsplash.com/photo-1593642702821-c8da6771f0c6?auto=format&fit=crop&q=80&w=1000",
			},
			AffiliateLink: "#",
			Category:      "Business",
			Brand:         "Dell",
		},
		{
			ID:            "3",
			Name:          "Asus ROG Zephyrus G14",
			Price:         "38.990.000₫",
			OriginalPrice: "42.000.000₫",
			Description:   "Laptop gaming nhỏ gọn mạnh mẽ nhất thế giới. Màn hình AniMe Matrix độc đáo.",
			Specs:         []string{"Ryzen 9 6900HS", "RX 6700S", "16GB RAM", "1TB SSD"},
			Images: []string{
				"https://images.unsplash.com/photo-1603302576837-37561b2e2302?auto=format&fit=crop&q=80&w=1000",
				"https://images.unsplash.com/photo-1630794180018-433d915c34ac?auto=format&fit=crop&q=80&w=1000",
			},
			AffiliateLink: "#",
			Category:      "Gaming",
			Brand:         "Asus",
		},
		{
			ID:            "4",
			Name:          "Lenovo ThinkPad X1 Carbon",
			Price:         "42.500.000₫",
			Description:   "Biểu tượng của sự bền bỉ và đẳng cấp doanh nhân. Bàn phím trứ danh.",
			Specs:         []string{"Core i7 1260P", "16GB RAM", "512GB SSD", "14 inch IPS"},
			Images: []string{
				"https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?auto=format&fit=crop&q=80&w=1000",
			},
			AffiliateLink: "#",
			Category:      "Business",
			Brand:         "Lenovo",
		},
	}
}

// News boshlang'ich yangiliklar
func News() []entity.NewsItem {
	return []entity.NewsItem{
		{
			ID:       "new-1",
			Title:    "AUZ",
			Summary:  "LAPTOP BẤT BAIK",
			Content:  "DFHGJ\nHJKG",
			ImageURL: "https://i.postimg.cc/43tcmZmX/anh1.webp",
			Images:   []string{"https://i.postimg.cc/43tcmZmX/anh1.webp"},
			Date:     "21/2/2026",
			Author:   "Admin",
		},
		{
			ID:       "1",
			Title:    "Top 5 Laptop cho sinh viên IT năm 2024",
			Summary:  "Tổng hợp những mẫu laptop bền bỉ, hiệu năng cao phù hợp cho việc lập trình.",
			Content:  "...",
			ImageURL: "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?auto=format&fit=crop&q=80&w=1000",
			Images: []string{
				"https://images.unsplash.com/photo-1522202176988-66273c2fd55f?auto=format&fit=crop&q=80&w=1000",
				"https://images.unsplash.com/photo-1531297461136-82af022f0b79?auto=format&fit=crop&q=80&w=1000",
			},
			Date:   "10/05/2024",
			Author: "Admin",
		},
		{
			ID:       "2",
			Title:    "Đánh giá chi tiết MacBook Air M3",
			Summary:  "Liệu có đáng nâng cấp từ M1 hay M2? Cùng xem bài phân tích chi tiết.",
			Content:  "...",
			ImageURL: "https://images.unsplash.com/photo-1531297461136-82af022f0b79?auto=format&fit=crop&q=80&w=1000",
			Images:   []string{"https://images.unsplash.com/photo-1531297461136-82af022f0b79?auto=format&fit=crop&q=80&w=1000"},
			Date:     "12/05/2024",
			Author:   "TechReview",
		},
		{
			ID:       "3",
			Title:    "NVIDIA ra mắt dòng card đồ họa mới cho laptop",
			Summary:  "Hiệu năng tăng 30% nhưng tiết kiệm điện năng hơn. Xu hướng AI trên laptop.",
			Content:  "...",
			ImageURL: "https://images.unsplash.com/photo-1591488320449-011701bb6704?auto=format&fit=crop&q=80&w=1000",
			Images:   []string{"https://images.unsplash.com/photo-1591488320449-011701bb6704?auto=format&fit=crop&q=80&w=1000"},
			Date:     "15/05/2024",
			Author:   "NewsBot",
		},
	}
}
