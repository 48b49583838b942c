package domain

type Team struct {
	Name        string
	ChannelID   string
	OwnerID     string
	LeaderID    string
	MemberCount int
	IsActive    bool
	Row         int
	Members     []TeamMember
}

// TeamMember - участник в календаре команды, Ordinal задает позицию колонки
type TeamMember struct {
	Handle  string
	Ordinal int
}
