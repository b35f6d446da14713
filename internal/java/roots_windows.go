package java

func standardRoots() []Root {
	return []Root{
		{Path: "C:\\Program Files\\Java"},
		{Path: "C:\\Program Files (x86)\\Java"},
		{Path: "C:\\Program Files\\Eclipse Adoptium"},
		{Path: "C:\\Program Files\\Eclipse Foundation"},
		{Path: "C:\\Program Files\\Zulu"},
		{Path: "C:\\Program Files\\Amazon Corretto"},
		{Path: "C:\\Program Files\\Microsoft"},
	}
}
