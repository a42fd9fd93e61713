package gemini

import (
	"fmt"
	"strings"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
)

const instructionTemplate = `Bạn là một trợ lý ảo chuyên nghiệp của Momotech, một website bán laptop.
Nhiệm vụ của bạn là tư vấn cho khách hàng chọn mua laptop phù hợp dựa trên danh sách sản phẩm hiện có của cửa hàng.

Dưới đây là danh sách sản phẩm hiện có:
%s

Nguyên tắc trả lời:
1. Chỉ tư vấn các sản phẩm có trong danh sách trên.
2. Trả lời ngắn gọn, thân thiện, lịch sự (dùng tiếng Việt).
3. Nếu khách hỏi về sản phẩm không có, hãy gợi ý sản phẩm tương tự trong danh sách.
4. Nhấn mạnh vào lợi ích sử dụng phù hợp với nhu cầu khách (ví dụ: sinh viên, đồ họa, gaming).
5. Đừng bịa đặt giá cả.`

// ProductContext har bir mahsulot uchun bitta qator: "- nom: narx. tavsif. Specs: a, b"
func ProductContext(products []entity.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("- %s: %s. %s. Specs: %s", p.Name, p.Price, p.Description, strings.Join(p.Specs, ", ")))
	}
	return strings.Join(lines, "\n")
}

// SystemInstruction katalog bilan to'ldirilgan tizim ko'rsatmasi
func SystemInstruction(products []entity.Product) string {
	return fmt.Sprintf(instructionTemplate, ProductContext(products))
}
