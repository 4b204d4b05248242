package dictionary

// seedPasswords are written into a freshly created dictionary, most common
// first.
var seedPasswords = []string{
	"123456", "123456789", "12345", "qwerty", "password", "12345678", "111111", "123123",
	"1234567890", "1234567", "qwerty123", "000000", "1q2w3e", "aa12345678", "abc123", "password1",
	"1234", "qwertyuiop", "123321", "password123", "1q2w3e4r5t", "iloveyou", "654321", "666666",
	"987654321", "123", "123456a", "qwe123", "1q2w3e4r", "7777777", "1qaz2wsx", "123qwe",
	"zxcvbnm", "121212", "asdasd", "a123456", "555555", "dragon", "112233", "123123123",
	"monkey", "11111111", "qazwsx", "159753", "asdfghjkl", "222222", "1234qwer", "qwerty1",
	"123654", "123abc", "asdfgh", "777777", "aaaaaa", "myspace1", "88888888", "fuckyou",
	"123456789a", "999999", "888888", "football", "princess", "789456123", "147258369", "1111111",
	"sunshine", "michael", "computer", "qwer1234", "daniel", "789456", "11111", "abcd1234",
	"q1w2e3r4", "shadow", "159357", "123456q", "1111", "samsung", "killer", "asd123",
	"superman", "master", "12345a", "azerty", "zxcvbn", "qazwsxedc", "131313", "ashley",
	"target123", "987654", "baseball", "qwert", "123456789q", "1234561", "jessica", "charlie",
	"00000000", "12341234", "1234567891", "asdf", "welcome", "147258", "trustno1", "letmein",
	"123654789", "hello", "696969", "starwars", "admin", "1q2w3e4r5t6y", "654321a", "12qwaszx",
	"123qweasd", "0123456789", "qwerty12", "123456abc", "iloveu", "passw0rd", "1qazxsw2", "password12",
	"lovely", "7758521", "666888", "520520", "5201314", "woaini", "woaini1314", "a5201314",
	"1314520", "5211314", "a123123", "qq123456", "abc123456", "wang123", "zhang123", "123456aa",
	"aa123456", "asd123456", "woaini520", "iloveyou1", "000000a", "11223344", "123456123", "147852369",
	"147852", "258369", "12344321", "1122334455", "123123a", "321321", "7758258", "aaa123",
	"qwe123456", "qweasd", "qweasdzxc", "1234abcd", "abcdef", "abcdefg", "abcdefgh", "12345678a",
	"admin123", "root", "toor", "guest", "test", "test123", "changeme", "secret",
	"pass", "pass123", "mustang", "access", "batman", "thomas", "hockey", "ranger",
	"jordan", "harley", "hunter", "buster", "soccer", "tigger", "robert", "matthew",
	"andrew", "pepper", "jennifer", "joshua", "2000", "freedom", "ginger", "maggie",
	"cheese", "amanda", "summer", "love", "nicole", "chelsea", "biteme", "1111111111",
	"whatever", "yankees", "dallas", "austin", "thunder", "taylor", "matrix", "minecraft",
	"george", "orange", "flower", "purple", "diamond", "hannah", "silver", "butterfly",
	"peanut", "cookie", "loveme", "anthony", "qwertyu", "1234567a", "asdf1234", "zaq12wsx",
	"1q2w3e4r5", "qwerty123456", "password1234", "p@ssw0rd", "P@ssw0rd", "Password", "Password1", "Password123",
	"Qwerty123", "Aa123456", "Aa123456789", "Abc123456", "Welcome1", "Admin123", "Passw0rd", "Zxcvbnm123",
	"2020", "2021", "2022", "2023", "2024", "2025", "1990", "1991",
	"1992", "1993", "1994", "1995", "1996", "1997", "1998", "1999",
	"2001", "2002", "2003", "2004", "jordan23", "hunter2", "bailey", "chicken",
	"heather", "mercedes", "scooter", "jasmine", "richard", "morgan", "michelle", "william",
	"corvette", "martin", "merlin", "chester", "bigdog", "banana", "cowboy", "steelers",
	"london", "ferrari", "golf", "snoopy", "boomer", "mickey", "maverick", "gateway",
	"hammer", "phoenix", "camaro", "yellow", "compaq", "tiger", "booger", "junior",
	"forever", "johnny", "ncc1701", "knight", "winter", "boston", "blowme", "rabbit",
	"blue", "golfer", "money", "falcon", "dakota", "midnight", "internet", "victoria",
	"jackson", "sparky", "fishing", "eagles", "marlboro", "packers", "horney", "slayer",
	"magic", "1qaz2wsx3edc", "zaq1zaq1", "!qaz2wsx", "1q2w3e4r5t6y7u", "asdzxc", "zxc123", "zxcasdqwe",
	"qwerasdf", "asdfasdf", "asdfjkl", "qwerty1234", "qwerty12345", "q1w2e3", "q1w2e3r4t5", "q1w2e3r4t5y6",
	"1a2b3c", "1a2b3c4d", "a1b2c3", "a1b2c3d4", "abc", "abcd", "abc12345", "abcabc",
	"aaa111", "aaaaaaaa", "aaaaa", "aaaa", "123aaa", "1qazxsw23edc", "passwd", "password2",
	"password01", "p@ssword", "pa55word", "pa55w0rd", "passpass", "passport", "passion", "secret123",
	"letmein1", "letmein123", "welcome1", "welcome123", "changeme123", "default", "guest123", "admin1",
	"administrator", "admin12345", "adminadmin", "test1", "test1234", "testing", "tester", "user",
	"user123", "login", "login123", "demo", "sample", "temp", "temp123", "system",
	"manager", "support", "qwerty!", "000", "0000", "00000", "0000000", "000000000",
	"0000000000", "111", "11", "1212", "12121212", "1313", "123456789012", "12345678910",
	"123412341234", "123321123", "1234554321", "123454321", "112233445566", "121314", "101010", "100200",
	"102030", "111222", "111222333", "123000", "123098", "123789", "123987", "1234321",
	"135790", "135246", "159159", "159357456", "159951", "1928374655", "19871987", "19891989",
	"1q1q1q", "2010", "2011", "2012", "2013", "2014", "2015", "2016",
	"2017", "2018", "2019", "1980", "1981", "1982", "1983", "1984",
	"1985", "1986", "1987", "1988", "1989", "1970", "1975", "1978",
	"1979", "1977", "1976", "2005", "2006", "2007", "2008", "2009",
	"212121", "222333", "232323", "234567", "252525", "3333", "333333", "33333333",
	"321654", "343434", "4444", "444444", "44444444", "456456", "456789", "4567890",
	"5555", "55555", "5555555", "55555555", "5656", "565656", "6666", "66666",
	"6666666", "66666666", "6969", "7777", "77777", "777777777", "789789", "7894561230",
	"789654", "789654123", "8888", "88888", "8888888", "888999", "9999", "99999",
	"9999999", "99999999", "98765", "9876543210", "963852741", "951753", "852456", "741852963",
	"741852", "258456", "147147", "123qwe123", "qwe", "qweqwe", "qweqweqwe", "qazqaz",
	"wsxwsx", "monkey1", "monkey123", "dragon1", "dragon123", "shadow1", "master1", "master123",
	"sunshine1", "princess1", "football1", "baseball1", "superman1", "batman1", "iloveyou2", "iloveyou!",
	"loveyou", "lovelove", "lover", "love123", "love1234", "iloveme", "ilovegod", "ilovemom",
	"ilovemyself", "babygirl", "babygirl1", "baby", "baby123", "babyboy", "angel", "angel1",
	"angels", "beautiful", "flowers", "sweety", "sweetheart", "sweetie", "honey", "honey123",
	"sugar", "candy", "cutie", "cute", "kitty", "kitten", "pussycat", "hello123",
	"hello1", "helloworld", "hellokitty", "michael1", "jessica1", "charlie1", "ashley1", "daniel1",
	"jordan1", "justin", "justin1", "robert1", "andrea", "andrew1", "anthony1", "brandon",
	"brandon1", "carlos", "chris", "christian", "christine", "christopher", "david", "david1",
	"dennis", "diana", "edward", "eric", "frank", "fernando", "gabriel", "hector",
	"jack", "jackie", "james", "james1", "jason", "jason1", "jennifer1", "jeremy",
	"john", "john123", "jonathan", "joseph", "joshua1", "kevin", "lauren", "linda",
	"lisa", "maria", "mariana", "mario", "mark", "martin1", "melissa", "michelle1",
	"mike", "naruto", "nathan", "natalie", "patrick", "paul", "peter", "rachel",
	"rebecca", "richard1", "samantha", "sarah", "scott", "sophie", "stephanie", "steven",
	"thomas1", "tiffany", "tommy", "victor", "william1", "alexander", "alexandra", "alexis",
	"alex", "alex123", "anna", "barbara", "benjamin", "brian", "carlos1", "caroline",
	"charles", "chloe", "cindy", "daniela", "danielle", "david123", "emily", "emma",
	"george1", "hannah1", "isabella", "jack123", "jacob", "jake", "jasmine1", "jenny",
	"julia", "julie", "junior1", "katie", "kelly", "kimberly", "kristen", "laura",
	"leslie", "lucky", "lucky1", "madison", "marina", "matthew1", "max", "maxwell",
	"megan", "mickey1", "miguel", "molly", "monica", "nancy", "nicholas", "nicole1",
	"oliver", "olivia", "pamela", "pedro", "rachel1", "ricardo", "roberto", "rose",
	"sabrina", "samuel", "sandra", "sebastian", "sergio", "simone", "sophia", "stella",
	"susan", "tanner", "teresa", "tyler", "valentina", "vanessa", "veronica", "william2",
	"zachary", "starwars1", "pokemon", "pokemon1", "naruto1", "spiderman", "batman123", "superman123",
	"ironman", "hulk", "thor", "gandalf", "frodo", "matrix1", "neo", "trinity",
	"zelda", "mario1", "sonic", "fortnite", "roblox", "pikachu", "dragonball", "goku",
	"vegeta", "football123", "soccer1", "soccer123", "basketball", "hockey1", "baseball123", "tennis",
	"golf123", "chelsea1", "arsenal", "liverpool", "manchester", "barcelona", "realmadrid", "juventus",
	"milan", "lakers", "yankees1", "cowboys", "steelers1", "patriots", "packers1", "eagles1",
	"raiders", "broncos", "redsox", "celtic", "rangers1", "computer1", "internet1", "samsung1",
	"nokia", "iphone", "apple", "apple123", "google", "google123", "yahoo", "hotmail",
	"gmail", "facebook", "twitter", "myspace", "linkedin", "microsoft", "windows", "windows7",
	"linux", "ubuntu", "oracle", "cisco", "dell", "lenovo", "toshiba", "sony",
	"canon", "nintendo", "playstation", "xbox", "xbox360", "ps3", "ps4", "pc123",
	"mustang1", "corvette1", "ferrari1", "porsche", "bmw", "mercedes1", "audi", "honda",
	"toyota", "nissan", "ford", "chevy", "harley1", "yamaha", "suzuki", "kawasaki",
	"ducati", "jeep", "volvo", "summer1", "winter1", "spring", "autumn", "december",
	"january", "february", "march", "april", "may", "june", "july", "august",
	"september", "october", "november", "monday", "friday", "sunday", "weekend", "christmas",
	"holiday", "birthday", "qwerty7", "qwerty11", "qwerty01", "qwerty00", "asdfg", "zxcvb",
	"zxcv", "qwertz", "qwertzu", "asdfghjk", "zxcvbnm1", "zxcvbnm123", "1qwerty", "1qaz",
	"2wsx", "3edc", "4rfv", "qazxsw", "qaz123", "wsx123", "edc123", "poiuytrewq",
	"lkjhgfdsa", "mnbvcxz", "0987654321", "09876", "ytrewq", "killer1", "killer123", "hacker",
	"hacker123", "h4x0r", "ninja", "ninja123", "samurai", "warrior", "viking", "pirate",
	"zombie", "devil", "demon", "angel123", "god", "jesus", "jesus1", "jesuschrist",
	"christ", "faith", "blessed", "heaven", "hell", "lucifer", "satan", "cheese1",
	"pizza", "pizza123", "burger", "coffee", "chocolate", "cookie1", "banana1", "apple1",
	"orange1", "lemon", "cherry", "strawberry", "peaches", "mango", "pepper1", "ginger1",
	"pumpkin", "tigers", "lions", "bears", "wolf", "wolves", "eagle", "falcon1",
	"hawk", "shark", "dolphin", "tiger123", "lion", "panther", "jaguar", "cobra",
	"viper", "python", "snake", "horse", "pony", "bunny", "monkey12", "donkey",
	"turtle", "black", "white", "red", "green", "blue1", "yellow1", "purple1",
	"pink", "silver1", "golden", "gold", "diamond1", "crystal", "ruby", "emerald",
	"sapphire", "pearl", "music", "rock", "rocknroll", "metal", "metallica", "nirvana",
	"eminem", "50cent", "beatles", "elvis", "guitar", "piano", "drummer", "rapper",
	"hiphop", "jazz", "blues", "qwerty2", "password3", "password11", "password7", "pass1234",
	"pass12", "pass1", "pass2", "pass12345", "passw0rd1", "p4ssw0rd", "qwerty99", "qwerty69",
	"sexy", "sexy123", "sexygirl", "hottie", "hotmail1", "secret1", "private", "mypassword",
	"mypass", "mypass123", "nopassword", "nothing", "none", "noname", "unknown", "anonymous",
	"a12345", "a1234567", "a12345678", "a123456789", "aa1234", "aaa123456", "abc1234", "abcd123",
	"abcde", "abcde12345", "q123456", "q12345", "qwe1234", "qwe12345", "z123456", "zz123456",
	"12345qwert", "12345qwerty", "123abc123", "123asd", "123zxc", "1234zxcv", "asd1234", "zxc1234",
	"zxcvbnm12", "qazwsx123", "1qa2ws3ed", "1qaz1qaz", "2wsx3edc", "woaini123", "520131", "521521",
	"woshishui", "wangyu", "li123456", "liu123", "chen123", "qq123", "qq1234", "aini1314",
	"iloveyou520", "147258369a",
}
