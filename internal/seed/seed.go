// Package seed generates development fixtures: random members with
// pinyin-derived usernames and random board posts.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/crypto/bcrypt"

	"github.com/edutech-dev/board/internal/domain"
	"github.com/edutech-dev/board/internal/service"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}

var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

var roles = []domain.Role{
	domain.RoleUser,
	domain.RoleAdmin,
	domain.RoleTeacher,
}

const digits = "0123456789"

func randomName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

// usernameFromName derives an ASCII username from a display name by taking a
// random-length prefix of each syllable's pinyin, plus some digits.
func usernameFromName(name string) string {
	syllables := pinyin.LazyConvert(name, nil)
	username := ""

	for _, syllable := range syllables {
		length := rand.Intn(len(syllable)) + 1
		username += syllable[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}
	return username
}

// RandomMember builds a member with a random name, role and username. Every
// generated member shares the given password so developers can log in as any
// of them.
func RandomMember(password, emailDomain string) (*domain.Member, error) {
	hash, err := service.HashPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	name := randomName()
	username := usernameFromName(name)

	return &domain.Member{
		Email:        fmt.Sprintf("%s@%s", username, emailDomain),
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		Role:         roles[rand.Intn(len(roles))],
	}, nil
}

// RandomPost builds a numbered throwaway board post, writer spread over ten
// user names.
func RandomPost(i int) *domain.BoardPost {
	return &domain.BoardPost{
		Title:   fmt.Sprintf("title...%d", i),
		Content: fmt.Sprintf("content...%d", i),
		Writer:  fmt.Sprintf("user%d", i%10),
	}
}
