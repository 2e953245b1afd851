package seed

import "github.com/shopspring/decimal"

type categorySeed struct {
	Name        string
	Description string
}

type productSeed struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
}

type customerSeed struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

var categories = []categorySeed{
	{Name: "電化製品", Description: "家電製品、デジタル機器など"},
	{Name: "衣類", Description: "メンズ、レディース、キッズの衣類"},
	{Name: "食品", Description: "食料品、飲料、調味料など"},
	{Name: "家具", Description: "家具、インテリア用品"},
	{Name: "書籍", Description: "書籍、雑誌、教材"},
}

var products = []productSeed{
	{Name: "4Kテレビ 55インチ", Description: "高画質4K対応の大型テレビ", Category: "電化製品", Price: decimal.NewFromInt(89800), Stock: 15},
	{Name: "冷蔵庫 500L", Description: "大容量両開き冷蔵庫", Category: "電化製品", Price: decimal.NewFromInt(128000), Stock: 8},
	{Name: "メンズジャケット", Description: "ビジネスカジュアル対応のジャケット", Category: "衣類", Price: decimal.NewFromInt(12800), Stock: 50},
	{Name: "レディースワンピース", Description: "春夏向けカジュアルワンピース", Category: "衣類", Price: decimal.NewFromInt(6800), Stock: 30},
	{Name: "高級日本茶セット", Description: "煎茶、玉露のセット", Category: "食品", Price: decimal.NewFromInt(3800), Stock: 100},
	{Name: "調味料ギフトセット", Description: "醤油、味噌、だしの詰め合わせ", Category: "食品", Price: decimal.NewFromInt(4500), Stock: 45},
	{Name: "ソファーベッド", Description: "3人掛け対応のソファーベッド", Category: "家具", Price: decimal.NewFromInt(49800), Stock: 12},
	{Name: "ダイニングセット", Description: "テーブルと椅子4脚のセット", Category: "家具", Price: decimal.NewFromInt(78000), Stock: 8},
	{Name: "プログラミング入門書", Description: "初心者向けPython学習書", Category: "書籍", Price: decimal.NewFromInt(2800), Stock: 200},
	{Name: "料理レシピ本", Description: "和食の基本レシピ集", Category: "書籍", Price: decimal.NewFromInt(1800), Stock: 150},
}

var customers = []customerSeed{
	{Name: "山田太郎", Email: "yamada@example.com", Phone: "03-1234-5678", Address: "東京都新宿区新宿1-1-1"},
	{Name: "佐藤花子", Email: "sato@example.com", Phone: "03-2345-6789", Address: "東京都渋谷区渋谷2-2-2"},
	{Name: "鈴木一郎", Email: "suzuki@example.com", Phone: "03-3456-7890", Address: "東京都品川区品川3-3-3"},
	{Name: "田中美咲", Email: "tanaka@example.com", Phone: "03-4567-8901", Address: "東京都目黒区目黒4-4-4"},
	{Name: "伊藤健一", Email: "ito@example.com", Phone: "03-5678-9012", Address: "東京都港区港5-5-5"},
}
