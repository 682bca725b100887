package importer

// defaults.go collects every fallback value and header-spelling table the
// parsers rely on, so none of them hide as scattered literals.

// RecordDefaults holds the values filled in when an optional field cannot
// be resolved from a row.
type RecordDefaults struct {
	Category     string
	Marketplace  string
	TotalCost    string
	CurrentStock int
	ReorderPoint int
	LeadTime     int
	SupplierName string
	Location     string
}

// Defaults are the documented fallbacks for imported records.
var Defaults = RecordDefaults{
	Category:     "imported",
	Marketplace:  "imported",
	TotalCost:    "0.00",
	CurrentStock: 0,
	ReorderPoint: 10,
	LeadTime:     7,
	SupplierName: "Unknown",
	Location:     "Default",
}

// Candidate header spellings per canonical field, in priority order. The
// resolver tries each spelling in turn, so the most specific spellings
// come first and catch-all words like "price" come last.
var (
	skuCandidates = []string{
		"sku", "product sku", "item sku", "product_sku", "item_sku",
		"code", "product code",
	}
	productNameCandidates = []string{
		"product name", "product", "item name", "item", "name",
		"title", "description",
	}
	categoryCandidates = []string{
		"category", "product category", "type", "product type",
	}
	quantityCandidates = []string{
		"quantity", "units sold", "qty", "units", "quantity sold",
		"amount", "count",
	}
	unitPriceCandidates = []string{
		"unit price", "price", "sale price", "selling price",
		"price per unit", "unit_price",
	}
	totalCostCandidates = []string{
		"total cost", "cost", "total_cost", "cogs",
	}
	saleDateCandidates = []string{
		"sale date", "date", "order date", "transaction date",
		"sold date", "purchase date",
	}
	marketplaceCandidates = []string{
		"marketplace", "channel", "platform", "store",
	}
	notesCandidates = []string{
		"notes", "comments", "remarks", "memo",
	}

	sellingPriceCandidates = []string{
		"selling price", "sell price", "retail price", "unit price",
		"price",
	}
	costPriceCandidates = []string{
		"cost price", "unit cost", "purchase price", "buy price", "cost",
	}
	currentStockCandidates = []string{
		"current stock", "stock", "stock level", "inventory",
		"on hand", "quantity", "qty",
	}
	reorderPointCandidates = []string{
		"reorder point", "reorder level", "reorder", "min stock",
		"minimum stock",
	}
	leadTimeCandidates = []string{
		"lead time", "lead time days", "delivery time",
	}
	supplierNameCandidates = []string{
		"supplier", "supplier name", "vendor", "vendor name",
	}
	supplierContactCandidates = []string{
		"supplier contact", "supplier email", "vendor contact", "contact",
	}
	locationCandidates = []string{
		"location", "warehouse", "storage location", "bin",
	}
)

// SalesTemplateHeaders are the canonical column names emitted in the
// downloadable sales CSV template. Files written with these headers
// resolve without any fuzzy matching.
var SalesTemplateHeaders = []string{
	"SKU", "Product Name", "Category", "Quantity", "Unit Price",
	"Total Cost", "Sale Date", "Marketplace", "Notes",
}

// ProductTemplateHeaders are the canonical column names for the product
// CSV template.
var ProductTemplateHeaders = []string{
	"Product Name", "SKU", "Category", "Selling Price", "Cost Price",
	"Current Stock", "Reorder Point", "Lead Time", "Supplier",
	"Supplier Contact", "Location", "Notes",
}
