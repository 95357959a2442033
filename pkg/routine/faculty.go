package routine

import (
	"sort"
	"strings"
)

// facultyDirectory maps the initials printed in routine cells to full names.
var facultyDirectory = map[string]string{
	"IAZ":     "Dr. Ishtiaque Aziz Zahed",
	"Dr. MK":  "Dr. K.M. Mohibul Kabir",
	"GMD":     "Mr. Golam Moktader Daiyan",
	"TA":      "Mr. Mohammad Toufiq Ahmed",
	"Dr. MSA": "Dr. Md. Shahidul Alam",
	"ASZ":     "Ms. Arifa Sultana Zarna",
	"Dr. MMR": "Dr. Mohammad Mahbubur Rahman",
	"NNR":     "Ms. Nahida Nigar",
	"SAF":     "Ms. Saraf Anika",
	"SSA":     "Ms. Sayeda Suaiba Anwar",
	"BB":      "Mr. S.M. Baque Billah",
	"TK":      "Ms. Tania Khadem",
	"SHA":     "Ms. Sharmin Akter",
	"MC":      "Mr. Mashky Chowdhury Surja",
	"KA":      "Mr. Kazi Muhammad Asif Ashrafi",
	"AAA":     "Mr. Ahamed- Al- Arifin",
	"JM":      "Mr. Joydwip Mohajon",
	"SAH":     "Mr. Md. Sabbir Al Ahsan",
	"PRM":     "Ms. Parna Mutsuddy",
	"TAZ":     "Mr. Tanvir Azhar",
	"NSC":     "Ms. Nishat Soultana Chy",
	"JHJ":     "Mr. Md. Jahidul Hasan Jahid",
	"JUD":     "Mr. Md. Jamil Uddin",
	"TMD":     "Mr. Tahsin Mahmud",
	"MRI":     "Mr. Md. Rakibul Islam",
	"ARS":     "Ms. Arshiana Shamir",
	"SMI":     "Mr. Md. Siratul Mustakim Ifty",
	"MRA":     "Mr. Mohammed Morshed Rana",
	"JIM":     "Mr. Md. Jibon Mia",
	"SAZ":     "Ms. Shadika Afroze Ome",
	"SAB":     "Mr. Saklain Abdullah",
	"ANB":     "Ms. Anika Bushra",
	"SOA":     "Mr. Sourav Adhikary",
	"SKD":     "Mr. Sanath Kumar Das",
	"SAK":     "Ms.Shahin Akter",
	"MZC":     "Ms. Maliha Zahan Chowdhury",
	"TAS":     "Ms. Tahmina Akter Sumi",
	"JNM":     "Ms. Tanjum Motin Mitul",
	"UDD":     "Mr. Udoy Das",
	"RHN":     "Mr. Riad Hossain",
	"MSR":     "Mr. Md. Sajeed-Ur-Rahman",
	"AKS":     "Mr. Mohammad Akbar Bin Shah",
	"RSN":     "Rajarshi Sen",
	"LAM":     "Lamiya Anjum",
	"IM":      "Ishtiaque Mainuddin",
}

// FacultyName looks up the full name behind a set of initials.
func FacultyName(initials string) (string, bool) {
	name, ok := facultyDirectory[initials]
	return name, ok
}

// LookupFaculty finds a directory entry by its initials, trying an exact match
// first and then ignoring case, so both "iaz" and "Dr. MK" resolve.
func LookupFaculty(query string) (Faculty, bool) {
	query = strings.TrimSpace(query)
	if name, ok := facultyDirectory[query]; ok {
		return Faculty{Initials: query, Name: name}, true
	}
	for initials, name := range facultyDirectory {
		if strings.EqualFold(initials, query) {
			return Faculty{Initials: initials, Name: name}, true
		}
	}
	return Faculty{}, false
}

// FacultyLabel returns the full name behind initials, or "N/A" when unknown.
func FacultyLabel(initials string) string {
	if name, ok := FacultyName(initials); ok {
		return name
	}
	return NotAvailable
}

// FacultyDirectory returns every known teacher, sorted by initials.
func FacultyDirectory() []Faculty {
	list := make([]Faculty, 0, len(facultyDirectory))
	for initials, name := range facultyDirectory {
		list = append(list, Faculty{Initials: initials, Name: name})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Initials < list[j].Initials
	})
	return list
}
