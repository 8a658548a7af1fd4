package generator

import (
	"fmt"
	"math/rand"
	"strings"
)

// Word pools for generated names. Names and emails stay deterministic
// functions of the row id so uniqueness holds by construction.

var categoryNames = []string{
	"Electronics", "Books", "Clothing", "Home & Garden", "Sports",
	"Toys", "Automotive", "Health", "Beauty", "Grocery",
	"Office", "Pet Supplies", "Jewelry", "Music", "Outdoors",
	"Baby", "Tools", "Furniture", "Footwear", "Appliances",
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Nancy", "Matthew", "Lisa",
	"Anthony", "Betty", "Mark", "Sandra", "Steven", "Ashley", "Paul", "Emily",
	"Andrew", "Donna", "Joshua", "Michelle", "Kevin", "Carol", "Brian", "Amanda",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "icloud.com",
	"mail.com", "example.com", "fastmail.com",
}

var productAdjectives = []string{
	"Classic", "Premium", "Compact", "Deluxe", "Essential", "Portable",
	"Wireless", "Ergonomic", "Vintage", "Modern", "Durable", "Lightweight",
}

var productNouns = []string{
	"Lamp", "Keyboard", "Backpack", "Mug", "Headphones", "Notebook",
	"Charger", "Blanket", "Bottle", "Speaker", "Chair", "Monitor",
	"Camera", "Jacket", "Sneakers", "Desk", "Router", "Kettle",
}

var loremWords = []string{
	"quality", "design", "value", "comfort", "performance", "style",
	"everyday", "reliable", "modern", "compact", "versatile", "essential",
	"crafted", "finish", "durable", "premium", "classic", "practical",
}

var (
	categoryColumns  = []string{"category_id", "name", "description"}
	customerColumns  = []string{"customer_id", "name", "email", "phone", "signup_date", "is_deleted"}
	productColumns   = []string{"product_id", "name", "description", "price", "stock_quantity", "category_id", "updated_at"}
	orderColumns     = []string{"order_id", "customer_id", "order_date", "total_amount"}
	orderItemColumns = []string{"order_item_id", "order_id", "product_id", "quantity", "unit_price"}
)

func categoryName(id int) string {
	if id <= len(categoryNames) {
		return categoryNames[id-1]
	}
	return fmt.Sprintf("%s %d", categoryNames[(id-1)%len(categoryNames)], (id-1)/len(categoryNames)+1)
}

func customerName(id int) string {
	first := firstNames[(id-1)%len(firstNames)]
	last := lastNames[((id-1)/len(firstNames))%len(lastNames)]
	return first + " " + last
}

func customerEmail(id int) string {
	name := strings.ToLower(strings.ReplaceAll(customerName(id), " ", "."))
	return fmt.Sprintf("%s.%d@%s", name, id, emailDomains[(id-1)%len(emailDomains)])
}

func productName(id int) string {
	adj := productAdjectives[(id-1)%len(productAdjectives)]
	noun := productNouns[((id-1)/len(productAdjectives))%len(productNouns)]
	return fmt.Sprintf("%s %s #%d", adj, noun, id)
}

func randomPhone(rng *rand.Rand) string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", 200+rng.Intn(800), rng.Intn(1000), rng.Intn(10000))
}

func randomSentence(rng *rand.Rand, wordCount int) string {
	words := make([]string, wordCount)
	for i := range words {
		words[i] = loremWords[rng.Intn(len(loremWords))]
	}
	s := strings.Join(words, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
