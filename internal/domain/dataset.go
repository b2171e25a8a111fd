package domain

// salesData é o conjunto fixo de vendas carregado pela aplicação.
// Nunca deve ser alterado em tempo de execução; use SalesDataset para obter uma cópia.
var salesData = []SalesRecord{
	// 2022
	{Year: 2022, Month: "Jan", Sales: 4200, Orders: 156, Revenue: 84000},
	{Year: 2022, Month: "Feb", Sales: 3800, Orders: 142, Revenue: 76000},
	{Year: 2022, Month: "Mar", Sales: 5100, Orders: 189, Revenue: 102000},
	{Year: 2022, Month: "Apr", Sales: 4600, Orders: 171, Revenue: 92000},
	{Year: 2022, Month: "May", Sales: 5400, Orders: 201, Revenue: 108000},
	{Year: 2022, Month: "Jun", Sales: 4900, Orders: 182, Revenue: 98000},
	{Year: 2022, Month: "Jul", Sales: 5200, Orders: 193, Revenue: 104000},
	{Year: 2022, Month: "Aug", Sales: 4800, Orders: 178, Revenue: 96000},
	{Year: 2022, Month: "Sep", Sales: 5600, Orders: 208, Revenue: 112000},
	{Year: 2022, Month: "Oct", Sales: 6100, Orders: 227, Revenue: 122000},
	{Year: 2022, Month: "Nov", Sales: 7200, Orders: 268, Revenue: 144000},
	{Year: 2022, Month: "Dec", Sales: 8500, Orders: 316, Revenue: 170000},

	// 2023
	{Year: 2023, Month: "Jan", Sales: 5200, Orders: 193, Revenue: 104000},
	{Year: 2023, Month: "Feb", Sales: 4800, Orders: 178, Revenue: 96000},
	{Year: 2023, Month: "Mar", Sales: 6300, Orders: 234, Revenue: 126000},
	{Year: 2023, Month: "Apr", Sales: 5800, Orders: 216, Revenue: 116000},
	{Year: 2023, Month: "May", Sales: 6700, Orders: 249, Revenue: 134000},
	{Year: 2023, Month: "Jun", Sales: 6200, Orders: 230, Revenue: 124000},
	{Year: 2023, Month: "Jul", Sales: 6500, Orders: 242, Revenue: 130000},
	{Year: 2023, Month: "Aug", Sales: 6000, Orders: 223, Revenue: 120000},
	{Year: 2023, Month: "Sep", Sales: 7100, Orders: 264, Revenue: 142000},
	{Year: 2023, Month: "Oct", Sales: 7800, Orders: 290, Revenue: 156000},
	{Year: 2023, Month: "Nov", Sales: 9200, Orders: 342, Revenue: 184000},
	{Year: 2023, Month: "Dec", Sales: 10800, Orders: 402, Revenue: 216000},

	// 2024
	{Year: 2024, Month: "Jan", Sales: 6400, Orders: 238, Revenue: 128000},
	{Year: 2024, Month: "Feb", Sales: 5900, Orders: 219, Revenue: 118000},
	{Year: 2024, Month: "Mar", Sales: 7800, Orders: 290, Revenue: 156000},
	{Year: 2024, Month: "Apr", Sales: 7200, Orders: 268, Revenue: 144000},
	{Year: 2024, Month: "May", Sales: 8300, Orders: 309, Revenue: 166000},
	{Year: 2024, Month: "Jun", Sales: 7700, Orders: 287, Revenue: 154000},
	{Year: 2024, Month: "Jul", Sales: 8100, Orders: 301, Revenue: 162000},
	{Year: 2024, Month: "Aug", Sales: 7500, Orders: 279, Revenue: 150000},
	{Year: 2024, Month: "Sep", Sales: 8800, Orders: 327, Revenue: 176000},
	{Year: 2024, Month: "Oct", Sales: 9600, Orders: 357, Revenue: 192000},
	{Year: 2024, Month: "Nov", Sales: 11400, Orders: 424, Revenue: 228000},
	{Year: 2024, Month: "Dec", Sales: 13200, Orders: 491, Revenue: 264000},
}

// SalesDataset retorna uma cópia do conjunto fixo de vendas
func SalesDataset() []SalesRecord {
	out := make([]SalesRecord, len(salesData))
	copy(out, salesData)
	return out
}
