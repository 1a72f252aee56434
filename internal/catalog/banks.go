package catalog

// banks holds the CBUAE bank-code assignments embedded in UAE IBANs.
var banks = []Bank{
	{Code: "010", Name: "Central Bank of UAE", Swift: "CBAUAEAA"},
	{Code: "013", Name: "Abu Dhabi Islamic Bank", Swift: "ABDIAEAD"},
	{Code: "015", Name: "Arab Bank", Swift: "ARABAEAA"},
	{Code: "017", Name: "Bank of Baroda", Swift: "BARBAEAA"},
	{Code: "019", Name: "First Abu Dhabi Bank", Swift: "FABAAEAD"},
	{Code: "020", Name: "Banque Misr", Swift: "BMISAEAA"},
	{Code: "023", Name: "Citibank", Swift: "CITIAEAA"},
	{Code: "027", Name: "HSBC Bank Middle East", Swift: "BBMEAEAD"},
	{Code: "030", Name: "Abu Dhabi Commercial Bank", Swift: "ADCBAEAA"},
	{Code: "033", Name: "Emirates NBD", Swift: "EBILAEAD"},
	{Code: "035", Name: "Dubai Islamic Bank", Swift: "DUIBAEAD"},
	{Code: "038", Name: "National Bank of Fujairah", Swift: "NBFUAEAF"},
	{Code: "040", Name: "National Bank of Ras Al-Khaimah", Swift: "NABORAKX"},
	{Code: "042", Name: "National Bank of Umm Al Qaiwain", Swift: "NBQAEAD"},
	{Code: "044", Name: "Sharjah Islamic Bank", Swift: "NBSHAEAS"},
	{Code: "046", Name: "Commercial Bank of Dubai", Swift: "CBDUAEAD"},
	{Code: "048", Name: "Standard Chartered Bank", Swift: "SCBLAEAA"},
	{Code: "050", Name: "Mashreq Bank", Swift: "BOMLAEAD"},
	{Code: "055", Name: "Union National Bank", Swift: "UBNEAEAD"},
	{Code: "060", Name: "Emirates Islamic Bank", Swift: "MEBIUAED"},
	{Code: "070", Name: "Ajman Bank", Swift: "AJMBAEAD"},
	{Code: "080", Name: "Al Hilal Bank", Swift: "HLALAEAA"},
}
