package catalog

import "authentix-backend/internal/model"

// Reference is the seed/fallback catalog: brands and products that ship with
// the registry and are resolvable even before anything is registered. The
// verification engine checks it before hitting the database, and the seeder
// loads it into the database.
type Reference struct {
	Brands   []model.Brand
	Products []model.Product
}

func Default() *Reference {
	return &Reference{Brands: referenceBrands, Products: referenceProducts}
}

func (r *Reference) BrandByID(id string) (model.Brand, bool) {
	for _, b := range r.Brands {
		if b.ID == id {
			return b, true
		}
	}
	return model.Brand{}, false
}

func (r *Reference) ProductByToken(token string) (model.Product, bool) {
	for _, p := range r.Products {
		if p.UnitToken == token {
			return p, true
		}
	}
	return model.Product{}, false
}

func (r *Reference) ProductsByBrand(brandID string) []model.Product {
	var out []model.Product
	for _, p := range r.Products {
		if p.BrandID == brandID {
			out = append(out, p)
		}
	}
	return out
}

// Placeholder is the brand shown for products whose brand is not in the
// reference set: generic "Registry Partner" identity carrying the real id.
func (r *Reference) Placeholder(brandID string) model.Brand {
	b := model.Brand{Name: "Registry Partner"}
	if len(r.Brands) > 0 {
		b = r.Brands[0]
		b.Name = "Registry Partner"
	}
	b.ID = brandID
	return b
}

var referenceBrands = []model.Brand{
	{
		ID:           "BR-001",
		Name:         "SonicStream",
		Logo:         "https://images.unsplash.com/photo-1614850523296-d8c1af93d400?q=80&w=100&h=100&auto=format&fit=crop",
		Description:  "Premium audio equipment and wireless solutions.",
		ContactEmail: "support@sonicstream.com",
	},
	{
		ID:           "BR-002",
		Name:         "DermaPure",
		Logo:         "https://images.unsplash.com/photo-1556228720-195a672e8a03?q=80&w=100&h=100&auto=format&fit=crop",
		Description:  "Clinical grade pharmaceutical skincare.",
		ContactEmail: "verify@dermapure.fr",
	},
	{
		ID:           "BR-003",
		Name:         "GreenLife",
		Logo:         "https://images.unsplash.com/photo-1542601906990-b4d3fb778b09?q=80&w=100&h=100&auto=format&fit=crop",
		Description:  "Sustainable personal care products.",
		ContactEmail: "eco@greenlife.org",
	},
}

var referenceProducts = []model.Product{
	{
		ID:          "P-101",
		BrandID:     "BR-001",
		Name:        "Pro-Audio X900 Earbuds",
		SKU:         "SS-X900-BLK",
		Category:    "Electronics",
		Description: "Active Noise Cancelling True Wireless Earbuds with spatial audio and 40-hour battery life.",
		ImageURL:    "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?q=80&w=800&auto=format&fit=crop",
		UnitToken:   "UNIT-P-101-MASTER-77",
		Specs:       model.SpecMap{"Driver": "12mm Dynamic", "Battery": "40h Total", "Waterproof": "IPX7", "Bluetooth": "5.3"},
	},
	{
		ID:          "P-102",
		BrandID:     "BR-001",
		Name:        "Sonic Over-Ear Studio",
		SKU:         "SS-STUDIO-H1",
		Category:    "Electronics",
		Description: "Professional grade studio monitor headphones for high-fidelity audio production.",
		ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=800&auto=format&fit=crop",
		UnitToken:   "UNIT-P-102-MASTER-99",
		Specs:       model.SpecMap{"Frequency": "5Hz-40kHz", "Impedance": "32 Ohm", "Type": "Closed-back"},
	},
	{
		ID:          "P-201",
		BrandID:     "BR-002",
		Name:        "Vitamin C Serum 30ml",
		SKU:         "DP-VC-30",
		Category:    "Pharmaceuticals",
		Description: "15% L-Ascorbic Acid skin rejuvenation serum with Ferulic acid for advanced antioxidant protection.",
		ImageURL:    "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?q=80&w=800&auto=format&fit=crop",
		UnitToken:   "UNIT-P-201-MASTER-SKIN",
		Specs:       model.SpecMap{"Concentration": "15%", "pH Level": "3.2", "Size": "30ml", "Shelf Life": "24 Months"},
	},
	{
		ID:          "P-202",
		BrandID:     "BR-002",
		Name:        "Hydrating Face Cream",
		SKU:         "DP-HC-50",
		Category:    "Pharmaceuticals",
		Description: "Deep hydration formula with multi-molecular hyaluronic acid for 24-hour moisture barrier.",
		ImageURL:    "https://images.unsplash.com/photo-1601049541289-9b1b7bbbfe19?q=80&w=800&auto=format&fit=crop",
		UnitToken:   "UNIT-P-202-MASTER-GLOW",
		Specs:       model.SpecMap{"Main Active": "Hyaluronic Acid", "Size": "50ml", "Fragrance": "None"},
	},
	{
		ID:          "P-301",
		BrandID:     "BR-003",
		Name:        "Bamboo Body Brush",
		SKU:         "GL-BBB-01",
		Category:    "Sustainability",
		Description: "Eco-friendly exfoliating body brush made from FSC-certified bamboo and natural agave bristles.",
		ImageURL:    "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?q=80&w=800&auto=format&fit=crop",
		UnitToken:   "UNIT-P-301-MASTER-ECO",
		Specs:       model.SpecMap{"Material": "Natural Bamboo", "Bristles": "Agave Fiber", "Impact": "100% Biodegradable"},
	},
}
