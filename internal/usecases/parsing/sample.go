package parsing

// SampleCSV devolve o conteúdo canônico de exemplo: seis linhas fixas e
// determinísticas, usadas como artefato de download e como fixture de teste
// do próprio parser. Todas as linhas são válidas.
func SampleCSV() string {
	return `id,date,revenue,orders,customerId,productId,productName,category,region
order_001,2024-01-15,1250.50,1,customer_001,product_101,Wireless Headphones,Electronics,North America
order_002,2024-01-18,340.00,1,customer_002,product_102,"Office Chair, Ergonomic",Furniture,Europe
order_003,2024-01-22,89.90,1,customer_003,product_103,Stainless Water Bottle,Home & Kitchen,Asia Pacific
order_004,2024-01-27,2199.00,1,customer_001,product_104,Gaming Laptop,Electronics,North America
order_005,2024-02-03,45.75,1,customer_004,product_105,Yoga Mat,Sports,Europe
order_006,2024-02-09,560.25,1,customer_005,product_106,Espresso Machine,Home & Kitchen,South America
`
}
