package schema

// Monetary amounts travel as decimal strings to keep the snapshot
// exact regardless of currency scale.
const CartStateSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "cart_state",
	"fields": [
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "cart_item",
				"fields": [
					{"name": "product", "type": {
						"type": "record",
						"name": "product",
						"fields": [
							{"name": "id", "type": "long"},
							{"name": "category_id", "type": "long"},
							{"name": "category_name", "type": "string"},
							{"name": "name", "type": "string"},
							{"name": "slug", "type": "string"},
							{"name": "description", "type": "string"},
							{"name": "price", "type": {
								"type": "record",
								"name": "price",
								"fields": [
									{"name": "amount", "type": "string"},
									{"name": "currency", "type": "string"}
								]
							}},
							{"name": "image", "type": "string"},
							{"name": "stock", "type": "long"},
							{"name": "available", "type": "boolean"}
						]
					}},
					{"name": "quantity", "type": "long"}
				]
			}
		}},
		{"name": "total", "type": "string"}
	]
}`

type (
	CartStateV1 struct {
		Items []CartItemV1 `avro:"items"`
		Total string       `avro:"total"`
	}

	CartItemV1 struct {
		Product  ProductV1 `avro:"product"`
		Quantity int       `avro:"quantity"`
	}

	ProductV1 struct {
		ID           int     `avro:"id"`
		CategoryID   int     `avro:"category_id"`
		CategoryName string  `avro:"category_name"`
		Name         string  `avro:"name"`
		Slug         string  `avro:"slug"`
		Description  string  `avro:"description"`
		Price        PriceV1 `avro:"price"`
		Image        string  `avro:"image"`
		Stock        int     `avro:"stock"`
		Available    bool    `avro:"available"`
	}

	PriceV1 struct {
		Amount   string `avro:"amount"`
		Currency string `avro:"currency"`
	}
)
