package correct

// commonWords is the built-in known-word list: high-frequency English words
// plus vocabulary that shows up in the school word lists this app is used
// with. Kept flat and lower-case; NewDictionary dedupes.
var commonWords = []string{
	// function words and high-frequency verbs
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
	"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
	"this", "but", "his", "by", "from", "they", "we", "say", "her",
	"she", "or", "an", "will", "my", "one", "all", "would", "there",
	"their", "what", "so", "up", "out", "if", "about", "who", "get",
	"which", "go", "me", "when", "make", "can", "like", "time", "no",
	"just", "him", "know", "take", "people", "into", "year", "your",
	"good", "some", "could", "them", "see", "other", "than", "then",
	"now", "look", "only", "come", "its", "over", "think", "also",
	"back", "after", "use", "two", "how", "our", "work", "first",
	"well", "way", "even", "new", "want", "because", "any", "these",
	"give", "day", "most", "us", "is", "was", "are", "were", "been",
	"has", "had", "did", "does", "doing", "done", "having", "being",

	// everyday nouns
	"apple", "banana", "book", "computer", "phone", "water", "food",
	"home", "school", "student", "teacher", "friend", "family", "child",
	"children", "man", "woman", "boy", "girl", "hand", "eye", "head",
	"night", "week", "month", "morning", "evening",
	"city", "country", "world", "place", "house", "room", "door", "window",
	"car", "bus", "train", "plane", "bike", "walk", "run", "jump",

	// everyday verbs
	"tell", "ask", "answer", "find", "call",
	"try", "need", "feel", "become", "leave", "put", "mean", "keep",
	"let", "begin", "seem", "help", "show", "hear", "play", "move",
	"live", "believe", "bring", "happen", "write", "provide", "sit",
	"stand", "lose", "pay", "meet", "include", "continue", "set",

	// everyday adjectives
	"last", "long", "great", "little", "own",
	"old", "right", "big", "high", "different", "small",
	"large", "next", "early", "young", "important", "few", "public",
	"bad", "same", "able", "happy", "sad", "beautiful", "ugly",
	"easy", "hard", "difficult", "simple", "clean", "dirty", "busy",
	"free", "full", "empty", "hot", "cold", "warm", "cool",
	"tall", "short", "fast", "slow", "late",

	// everyday adverbs
	"often", "always", "usually", "sometimes", "never", "already",
	"still", "yet", "too", "very",
	"really", "quite", "almost", "enough", "together", "instead",
	"however", "therefore", "moreover", "otherwise", "meanwhile",

	// textbook vocabulary
	"learn", "popular", "umbrella", "soon", "whose",
	"silver", "summer", "holiday", "everywhere", "friendship",
	"hurt", "judge", "luck", "magic", "mascot", "necklace", "olympic",
	"ordinary", "race", "ring", "shell", "soft", "toy", "test", "trust",
	"watch", "windy", "worried", "wristband", "athlete",
	"collect", "cyclist", "email", "kilometre", "opera",
	"quarter", "special", "spot", "stamp", "yours",
	"both", "change", "cook", "cousin", "doctor", "driver",
	"fantastic", "farmer", "grandfather", "grandmother",
	"grandparent", "granny", "introduce", "member", "nurse", "police",
	"problem", "role", "scene", "taxi", "woods", "word",
	"worker", "away", "riding", "hood",
}

// commonMisspellings maps frequent misreadings and classic English spelling
// mistakes to their corrections. Exact-key lookup, lower-case keys.
var commonMisspellings = map[string]string{
	// transposed / mangled letters
	"ofien": "often", "ofthen": "often", "offen": "often",
	"teh": "the", "hte": "the", "adn": "and",
	"taek": "take", "tkae": "take",
	"wiht": "with", "hwat": "what", "hwen": "when", "wheer": "where",
	"wroking": "working", "workign": "working",
	"gonig": "going", "comign": "coming",
	"geting": "getting", "runing": "running", "writting": "writing",
	"stoping": "stopping", "traveling": "travelling",
	"begining": "beginning", "forgeting": "forgetting",
	"prefering": "preferring", "occuring": "occurring",
	"permiting": "permitting", "admiting": "admitting",
	"submiting": "submitting",
	"dieing":    "dying", "lieing": "lying", "tieing": "tying",

	// classic English spelling traps
	"belive": "believe", "beleive": "believe",
	"acheive": "achieve", "acheve": "achieve",
	"freind": "friend", "freindly": "friendly",
	"beutiful": "beautiful", "beatiful": "beautiful", "beuatiful": "beautiful",
	"calender": "calendar", "collegue": "colleague", "collaegue": "colleague",
	"comming": "coming", "concious": "conscious",
	"definately": "definitely", "defiantly": "definitely", "definetly": "definitely",
	"definate": "definite", "definatly": "definitely",
	"dissapoint": "disappoint", "dissappoint": "disappoint",
	"dissapointing": "disappointing",
	"embarass":      "embarrass", "embaras": "embarrass",
	"enviroment": "environment", "existance": "existence",
	"experiance": "experience",
	"goverment":  "government", "govermant": "government",
	"grammer": "grammar", "harrass": "harass", "harras": "harass",
	"immediatly": "immediately", "imediately": "immediately",
	"independant": "independent", "indispensible": "indispensable",
	"liason": "liaison", "lonley": "lonely",
	"loosing": "losing", "looseing": "losing",
	"maintainance": "maintenance", "maintenence": "maintenance",
	"millenium": "millennium", "miniture": "miniature", "miniscule": "minuscule",
	"mischievious": "mischievous", "mispell": "misspell",
	"neccessary": "necessary", "neccesary": "necessary",
	"noticable": "noticeable",
	"occurance": "occurrence", "occurence": "occurrence", "ocurrence": "occurrence",
	"occured": "occurred",
	"paralell": "parallel", "parrallel": "parallel",
	"payed": "paid", "peice": "piece",
	"persistant": "persistent", "personell": "personnel",
	"posession": "possession", "possesion": "possession",
	"prefered": "preferred",
	"proffesional": "professional", "profesional": "professional",
	"publically": "publicly",
	"recieve":    "receive", "recive": "receive",
	"refering": "referring", "reffering": "referring", "referrence": "reference",
	"relevent": "relevant", "religous": "religious",
	"rember": "remember", "remeber": "remember",
	"resistence": "resistance", "sence": "sense",
	"seperate": "separate", "seperete": "separate",
	"sucessful": "successful", "successfull": "successful",
	"supercede": "supersede",
	"suprise":   "surprise", "surprize": "surprise",
	"thier": "their",
	"tommorow": "tomorrow", "tommorrow": "tomorrow",
	"truely": "truly", "untill": "until",
	"weild": "wield", "whereever": "wherever", "wierd": "weird",
	"abscence": "absence", "absense": "absence",
	"accomodate": "accommodate", "acommodate": "accommodate",
	"accross": "across", "adress": "address", "adressing": "addressing",
	"appearence": "appearance", "arguement": "argument",
	"assasination": "assassination", "basicly": "basically",
	"bizzare": "bizarre", "buisness": "business",
	"carribean": "caribbean", "catagory": "category", "cemetary": "cemetery",
	"changable": "changeable", "cheif": "chief", "colum": "column",
	"commited": "committed", "comparision": "comparison",
	"completly": "completely", "contraversy": "controversy", "cooly": "coolly",
	"daschund": "dachshund", "decieve": "deceive",
	"desparate": "desperate", "dilema": "dilemma",
	"equiped": "equipped", "exilerate": "exhilarate", "extreem": "extreme",
	"facinate": "fascinate", "febuary": "february", "firey": "fiery",
	"flourescent": "fluorescent", "foriegn": "foreign",
	"fullfill": "fulfill", "garantee": "guarantee", "glamourous": "glamorous",
	"hieght": "height", "humerous": "humorous",
	"idiosyncracy": "idiosyncrasy", "immitate": "imitate",
	"innoculate": "inoculate", "inteligence": "intelligence",
	"jewelery": "jewelry", "kernal": "kernel", "libary": "library",
	"lightening": "lightning", "lisense": "license",
	"medeval": "medieval", "pasttime": "pastime", "pavillion": "pavilion",
	"plagerize": "plagiarize", "playwrite": "playwright",
	"potatos": "potatoes", "preceeding": "preceding", "presance": "presence",
	"priviledge": "privilege", "probly": "probably", "promiss": "promise",
	"pronounciation": "pronunciation", "que": "queue",
	"questionaire": "questionnaire", "readible": "readable", "realy": "really",
	"recoginze": "recognize", "recomend": "recommend",
	"recomendation": "recommendation", "repitition": "repetition",
	"restaraunt": "restaurant", "rhythem": "rhythm", "rythm": "rhythm",
	"sieze": "seize", "sillouette": "silhouette", "similer": "similar",
	"sincerly": "sincerely", "soverign": "sovereign", "speach": "speech",
	"stratagy": "strategy", "tatoo": "tattoo", "tendancy": "tendency",
	"therefor": "therefore", "threshhold": "threshold", "tounge": "tongue",
	"unfortunatly": "unfortunately", "vaccuum": "vacuum",
	"vegtable": "vegetable", "vehical": "vehicle", "vilage": "village",
	"yte": "yet",

	// OCR misreadings seen in real word-list photos
	"pofalar": "popular", "poputar": "popular", "pular": "popular",
	"takephotos": "take photos", "shwaye": "show", "raco": "race",
	"tbeuk": "the uk", "bel": "bell", "eany": "early",
	"holictay": "holiday", "unlt": "unit",
	"oftien": "often", "ofen": "often", "oftern": "often",
	"brihg": "bring", "brlng": "bring", "slver": "silver", "sof": "soft",
	"mascpt": "mascot", "mas cot": "mascot", "neklace": "necklace",
	"wrist hand": "wristband",
}
